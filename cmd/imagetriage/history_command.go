package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"imagetriage/internal/runlog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent triage runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Run history is disabled; enable it in the [history] config section")
				return nil
			}

			store, err := runlog.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read run history: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run list as JSON")
	return cmd
}

func renderHistoryTable(runs []runlog.Run) string {
	headers := []string{"Run", "Mode", "Folder", "Started", "Duration", "Moved", "Skipped", "Failed"}
	aligns := []columnAlignment{
		alignLeft, alignLeft, alignLeft, alignLeft,
		alignRight, alignRight, alignRight, alignRight,
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortRunID(run.ID),
			run.Mode,
			run.Folder,
			run.StartedAt.Local().Format(time.DateTime),
			run.Duration.Round(time.Millisecond).String(),
			strconv.Itoa(run.Moved),
			strconv.Itoa(run.Skipped),
			strconv.Itoa(run.Failed),
		})
	}
	return renderTable(headers, rows, aligns)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
