// invaders is a terminal Space Invaders game.
//
// Usage:
//
//	invaders list            - List available games
//	invaders play            - Play the game
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set driver tick rate (default: 60)
//	--seed <value>  - Set seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/ostrikov/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A terminal rendition of the classic fixed-wave alien shooter.

Available commands:
  list     - Show all available games
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  invaders play
  invaders play --config ./my-invaders.yaml
  invaders serve --ssh :2222
  invaders scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Driver tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
