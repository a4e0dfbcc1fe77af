package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"titlecheck/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent reconciliation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No recorded runs")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.CreatedAt.Local().Format("2006-01-02 15:04"),
						run.RegisterPath,
						strconv.Itoa(run.Matched),
						strconv.Itoa(run.Mismatched),
						strconv.Itoa(run.KeyNotFound),
						strconv.Itoa(run.MissingNumber),
						run.OutputPath,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"When", "Register", "Match", "Diff", "Missing key", "No number", "Report"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
					out,
				))
				return nil
			})
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			})
		},
	})

	return historyCmd
}

func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
