package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gnu-dash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long:  `Shows the games registered with the platform and their IDs.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games registered.")
		return
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return simHeaderStyle
			}
			return simCellStyle
		})
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}
	fmt.Fprintln(out, t.Render())
}
