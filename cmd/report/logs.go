package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"company_analysis/internal/app/di"
	"company_analysis/internal/config"
	"company_analysis/internal/feature/analysis/domain/entity"
)

const defaultLogsLimit = 20

func newLogsCmd(cfg *config.ReportConfig, out io.Writer) *cobra.Command {
	limit := defaultLogsLimit

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent analysis requests from the generation log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, gdb, err := di.OpenGenerationLog(cfg.GenerationLog)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := gdb.DB(); err == nil {
					if err := sqlDB.Close(); err != nil {
						slog.Warn("failed to close generation log database", "error", err)
					}
				}
			}()

			logs, err := repo.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to load generation logs: %w", err)
			}
			return renderLogs(out, logs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", limit, "maximum number of entries, newest first")
	return cmd
}

// renderLogs はリクエスト記録を新しい順の表として書き出します。
func renderLogs(w io.Writer, logs []*entity.GenerationLog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REQUESTED AT\tCOMPANY\tPROVIDER\tMODEL\tOUTCOME\tTOKENS\tLATENCY\tERROR")
	for _, l := range logs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			l.RequestedAt.Format(time.RFC3339),
			l.CompanyName,
			l.Provider,
			l.Model,
			l.Outcome,
			l.TotalTokens,
			time.Duration(l.LatencyMillis)*time.Millisecond,
			l.ErrorMessage,
		)
	}
	return tw.Flush()
}
