// chomp is a terminal maze-chase game played in the terminal or over SSH.
//
// Usage:
//
//	chomp play               - Play the game
//	chomp list               - List available games
//	chomp serve              - Start SSH server for remote play
//	chomp scores             - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mazeworks/chomp/internal/games/chomp"
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
	Use:   "chomp",
	Short: "Chomp - maze-chase arcade game in your terminal",
	Long: `Chomp is a terminal maze-chase game. Guide the player through the
maze, eat every dot, and stay ahead of four ghosts with very
different ideas about how to catch you.

Available commands:
  play     - Play the game
  list     - Show registered games
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  chomp play
  chomp play --difficulty hard
  chomp serve --ssh :2222
  chomp scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
