package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-zoo/internal/platform/tui"
	"github.com/vovakirdan/tui-zoo/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (zoo or zoo_endless, default zoo).

Controls:
  Mouse drag        - Swap the animal under the pointer toward the drag
  Arrows/hjkl       - Move the cursor
  Space/Enter       - Grab the animal under the cursor
  Arrows + y/u/b/n  - Swap the grabbed animal (y/u/b/n are diagonals)
  P                 - Pause
  R                 - Restart (when paused or after time is up)
  Esc               - Leave (when paused or after time is up)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Long round, generous time bonus
  normal - Standard round
  hard   - Short round, small time bonus
  fixed  - Time bonus never shrinks

Examples:
  zoo play
  zoo play zoo_endless
  zoo play --difficulty hard --seed 42
  zoo play --config ./my-zoo.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "zoo"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'zoo list' to see available modes.")
		os.Exit(1)
	}

	cleanup, err := setupGame()
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
