package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geowars/internal/games/geowars"
	"github.com/vovakirdan/geowars/internal/platform/gui"
	"github.com/vovakirdan/geowars/internal/platform/tui"
	"github.com/vovakirdan/geowars/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  W/A/S/D      - Move
  Arrows/IJKL  - Fire in a direction
  Mouse/Space  - Fire toward the pointer
  P            - Pause
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five lives, fewer enemies, start at lowest difficulty
  normal - Three lives, start at 30% difficulty
  hard   - Two lives, more enemies, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  geowars play
  geowars play --difficulty hard
  geowars play --config ./my-geowars.yaml --no-ai`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start playing in a desktop window rendered with vector graphics.
Controls are the same as in the terminal; the mouse aims and fires.

Examples:
  geowars window
  geowars window --sound --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

var flagScale float64

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a := setup(true)
	defer a.Close()

	game, err := registry.Create(geowars.ID, a.deps())
	if err != nil {
		return fail("create game", err)
	}

	a.log.Info("starting", "mode", "terminal", "observer", a.broker.Enabled())
	if _, err := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  a.store,
		Sound:  a.sound,
		Logger: a.log,
	}); err != nil {
		return fail("run game", err)
	}
	return nil
}

func runWindow(_ *cobra.Command, _ []string) error {
	a := setup(false)
	defer a.Close()

	game := geowars.New(a.deps())

	a.log.Info("starting", "mode", "window", "observer", a.broker.Enabled())
	if err := gui.Run(game, runtimeConfig(), gui.Options{
		Store:  a.store,
		Sound:  a.sound,
		Logger: a.log,
		Scale:  flagScale,
	}); err != nil {
		return fail("run window", err)
	}
	return nil
}
