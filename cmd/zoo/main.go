// zoo is a terminal match-4 puzzle: swap animals on a 5x7 board until four
// or more line up in any of eight directions.
//
// Usage:
//
//	zoo list              - List game modes
//	zoo play [mode]       - Play a mode (default: zoo)
//	zoo menu              - Pick a mode interactively
//	zoo serve             - Start SSH server for remote play
//	zoo scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.zoo/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--sound               - Play sound cues
//	--log-file <path>     - Write debug logs to a file
//	--spectate <addr>     - Serve a read-only WebSocket feed of the board
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-zoo/internal/games/zoo"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagSpectate   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zoo",
	Short: "Zoo Match - a match-4 animal puzzle for your terminal",
	Long: `Zoo Match is a terminal puzzle. Swap neighbouring animals (diagonals
included) so that four or more of a kind line up horizontally, vertically
or diagonally. Cleared animals fall and new ones drop in from the top.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  zoo play
  zoo play zoo_endless --difficulty easy
  zoo menu --sound
  zoo play --spectate :8080
  zoo serve --ssh :2222`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.zoo/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Play sound cues")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.StringVar(&flagSpectate, "spectate", "", "Serve a read-only WebSocket board feed on this address (e.g. :8080)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
