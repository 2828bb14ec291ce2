package invaders

// SpawnWave replaces the swarm with a fresh rectangular formation and
// clears every live shot and bomb so the new wave starts clean. Called
// once at world creation and again whenever the swarm empties during a
// non-terminal tick.
func (w *World) SpawnWave() {
	w.Shots = w.Shots[:0]
	w.Bombs = w.Bombs[:0]

	w.Invaders = w.Invaders[:0]
	for row := 0; row < w.Rules.WaveRows; row++ {
		for col := 0; col < w.Rules.WaveCols; col++ {
			w.Invaders = append(w.Invaders, Point{
				X: col*w.Rules.WaveHSpacing + w.Rules.WaveOffsetX,
				Y: row*w.Rules.WaveVSpacing + w.Rules.WaveOffsetY,
			})
		}
	}
}
