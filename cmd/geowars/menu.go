package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geowars/internal/games/geowars"
	"github.com/vovakirdan/geowars/internal/platform/tui"
	"github.com/vovakirdan/geowars/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  geowars menu
  geowars menu --fps 30
  geowars menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a := setup(true)
	defer a.Close()

	cfg := runtimeConfig()
	opts := tui.Options{Store: a.store, Sound: a.sound, Logger: a.log}

	for {
		choice, newCfg, err := tui.RunMenu(a.store, geowars.ID, cfg, a.broker.Enabled())
		if err != nil {
			return fail("menu", err)
		}
		cfg = newCfg

		switch choice {
		case tui.ChoicePlay:
			game, err := registry.Create(geowars.ID, a.deps())
			if err != nil {
				return fail("create game", err)
			}
			back, err := tui.Run(game, cfg, opts)
			if err != nil {
				return fail("run game", err)
			}
			if !back {
				return nil
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(a.store, geowars.ID, "Geometry Wars", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fail("scores", err)
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}
