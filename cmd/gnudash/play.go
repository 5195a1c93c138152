package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play GNU Dash in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/Right, A/D, H/L   - Move
  Space/Up/W/K           - Jump (press again in the air to double jump)
  P/Esc                  - Pause
  R                      - Restart (after game over)
  Ctrl+S                 - Save a screenshot
  Q/Ctrl+C               - Quit

Terminals report key repeats but not releases, so a key counts as held
for frontend.key_hold_ticks ticks after its last repeat.

Presets:
  easy     - More Liberty Shields, fewer holes, slower scrolling
  normal   - The configured values
  hard     - Fewer shields, more holes, faster scrolling

Examples:
  gnudash play
  gnudash play --preset easy
  gnudash play --seed 42 --fps 30
  gnudash play --config ./dash.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change (applied on the next run)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	w := s.watcher()
	if w != nil {
		defer w.Close()
	}

	_, err = tui.Run(dash.New(), s.store, s.runtime, tui.Options{
		HoldTicks:     s.cfg.Frontend.KeyHoldTicks,
		JumpHoldTicks: s.cfg.Frontend.JumpHoldTicks,
		Preset:        s.presetName(),
		Watcher:       w,
		Logger:        s.logger,
	})
	return err
}
