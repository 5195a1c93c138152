package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

var (
	flagRuns  int
	flagTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot simulations",
	Long: `Let the autopilot play a number of runs without any display and check
the level invariants on every tick: the generated level always reaches
one and a half screens ahead, nothing off screen is kept, and enough
source code is always on offer.

Run N uses seed --seed+N, so a failing run can be replayed exactly.

Examples:
  gnudash sim
  gnudash sim --runs 50 --ticks 10000 --preset hard
  gnudash sim --seed 1000 --log-level debug --log-file -`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks per run")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Seed       int64
	Stats      dash.Stats
	GameOver   bool
	Violations []string
	Hash       uint64
}

// simulate plays one run with the autopilot for at most ticks ticks.
func simulate(cfg config.DashConfig, seed int64, ticks int) simResult {
	game := dash.NewWithConfig(cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: 60,
		Seed:     seed,
	})

	res := simResult{Seed: seed}
	limit := float64(cfg.Screen.Width) * 1.5
	for range ticks {
		before := game.Player().Freedom()
		result := game.Step(dash.Autopilot(game))
		if result.State.GameOver {
			res.GameOver = true
			break
		}

		level := game.Level()
		tick := result.Ticks
		if level.Frontier() < limit {
			res.Violations = append(res.Violations,
				fmt.Sprintf("tick %d: frontier %.1f behind %.1f", tick, level.Frontier(), limit))
		}
		for _, o := range level.Obstacles() {
			if o.Rect.Right() <= 0 {
				res.Violations = append(res.Violations,
					fmt.Sprintf("tick %d: obstacle %d off screen", tick, o.ID))
			}
		}
		picked := game.Player().Freedom() - before
		if n := len(level.Collectibles()); n+picked < cfg.Level.MinSourceCodes {
			res.Violations = append(res.Violations,
				fmt.Sprintf("tick %d: only %d source codes", tick, n))
		}
	}

	res.Stats = game.Stats()
	snap := game.Snapshot()
	res.Hash = snap.Hash()
	return res
}

func runSim(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	results := make([]simResult, 0, flagRuns)
	for i := range flagRuns {
		seed := flagSeed + int64(i)
		res := simulate(s.cfg, seed, flagTicks)
		results = append(results, res)
		s.logger.Debug("run finished", "seed", seed, "freedom", res.Stats.Freedom,
			"ticks", res.Stats.Ticks, "violations", len(res.Violations))

		if s.store != nil {
			if _, err := s.store.SaveRun(storage.Run{
				Seed:        seed,
				Preset:      s.presetName(),
				Freedom:     res.Stats.Freedom,
				Distance:    res.Stats.Distance,
				Ticks:       res.Stats.Ticks,
				ShieldsLost: res.Stats.ShieldsLost,
			}); err != nil {
				s.logger.Warn("could not record run", "seed", seed, "err", err)
			}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSimSummary(results, s.store))

	failed := 0
	for _, r := range results {
		if len(r.Violations) > 0 {
			failed++
			for _, v := range r.Violations {
				s.logger.Error("invariant violated", "seed", r.Seed, "detail", v)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d runs violated level invariants", failed, len(results))
	}
	return nil
}

var (
	simTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	simHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	simCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	simFailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
)

func renderSimSummary(results []simResult, store *storage.Store) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		if len(r.Violations) > 0 {
			status = fmt.Sprintf("%d violations", len(r.Violations))
		}
		end := "alive"
		if r.GameOver {
			end = "game over"
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Stats.Freedom),
			strconv.Itoa(r.Stats.Distance),
			strconv.Itoa(r.Stats.Ticks),
			strconv.Itoa(r.Stats.ShieldsLost),
			end,
			fmt.Sprintf("%016x", r.Hash),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Seed", "Freedom", "Distance", "Ticks", "Shields lost", "End", "Snapshot", "Invariants").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return simHeaderStyle
			case col == 7 && row >= 0 && row < len(rows) && rows[row][7] != "ok":
				return simFailStyle
			default:
				return simCellStyle
			}
		})

	out := simTitleStyle.Render("GNU Dash autopilot") + "\n" + t.Render()
	if store != nil {
		if st, err := store.Stats(); err == nil && st.Runs > 0 {
			out += fmt.Sprintf("\nruns %d  best freedom %d  avg freedom %.1f  max distance %d",
				st.Runs, st.BestFreedom, st.AvgFreedom, st.MaxDistance)
		}
	}
	return out
}
