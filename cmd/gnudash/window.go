package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play GNU Dash in a desktop window",
	Long: `Open a desktop window and play with real key presses and releases.

Controls:
  Left/Right, A/D        - Move
  Space/Up/W, mouse      - Jump (release early for a short jump)
  P/Esc                  - Pause
  Any key                - Restart (after game over)
  Q                      - Quit

Examples:
  gnudash window
  gnudash window --scale 2 --preset hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return window.Run(dash.New(), s.store, s.runtime, window.Options{
		Scale:  flagScale,
		Preset: s.presetName(),
		Logger: s.logger,
	})
}
