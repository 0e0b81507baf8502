// breakout is a terminal breakout game with local and SSH play.
//
// Usage:
//
//	breakout play [game]     - Play (default: breakout)
//	breakout menu            - Pick a mode interactively
//	breakout serve           - Start SSH server for remote play
//	breakout scores [game]   - Show high scores
//	breakout list            - List game variants
//	breakout layout          - Print a generated brick layout
//	breakout sim             - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
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
	Use:   "breakout",
	Short: "Breakout - bounce, break, repeat in your terminal",
	Long: `Breakout is the classic brick breaker for the terminal.

Available commands:
  play     - Play a game directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show game variants
  layout   - Print a generated brick layout
  sim      - Run the simulation without a terminal

Examples:
  breakout play
  breakout play --random --difficulty hard
  breakout serve --ssh :2222
  breakout sim --ticks 3600 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(simCmd)
}
