package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start GNU Dash with an interactive menu",
	Long: `Start in interactive menu mode.

From the menu you can play, watch the autopilot in demo mode, or list
the best runs of this session. Runs are kept in memory only and are
gone when the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  gnudash menu
  gnudash menu --preset hard --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.runtime
	game := dash.New()

	for {
		result, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		var back bool
		switch result.Choice {
		case tui.ChoicePlay, tui.ChoiceDemo:
			back, err = tui.Run(game, s.store, cfg, tui.Options{
				Demo:          result.Choice == tui.ChoiceDemo,
				HoldTicks:     s.cfg.Frontend.KeyHoldTicks,
				JumpHoldTicks: s.cfg.Frontend.JumpHoldTicks,
				Preset:        s.presetName(),
				Logger:        s.logger,
			})
		case tui.ChoiceRuns:
			back, err = tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
