// Package config provides YAML-based configuration loading for the
// invaders platform. The defaults carry the classic gameplay constants;
// a custom file can restyle the board without recompiling.
package config

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Wave   WaveConfig   `yaml:"wave"`
	Player PlayerConfig `yaml:"player"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the play field dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WaveConfig defines the invader formation geometry.
type WaveConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	HSpacing int `yaml:"h_spacing"`
	VSpacing int `yaml:"v_spacing"`
	OffsetX  int `yaml:"offset_x"`
	OffsetY  int `yaml:"offset_y"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives      int `yaml:"lives"`
	ShotCap    int `yaml:"shot_cap"`
	KillPoints int `yaml:"kill_points"`
}

// TimingConfig defines the simulation cadence in milliseconds.
type TimingConfig struct {
	SimTickMS      int `yaml:"sim_tick_ms"`
	FireIntervalMS int `yaml:"fire_interval_ms"`
}
