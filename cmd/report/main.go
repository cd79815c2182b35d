// Command report は分析APIを呼び出し、結果をターミナルに表示します。
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"company_analysis/internal/config"
	"company_analysis/internal/feature/report/adapters/httpapi"
	"company_analysis/internal/feature/report/usecase"
	"company_analysis/internal/feature/report/view"
	infrahttp "company_analysis/internal/platform/http"
)

func main() {
	cfg, err := config.LoadReport()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, os.Stdout).ExecuteContext(context.Background()); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// reportedError は画面状態としてすでに出力したエラーです。
type reportedError struct {
	msg string
}

func (e reportedError) Error() string { return e.msg }

func newRootCmd(cfg *config.ReportConfig, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "report",
		Short:         "AI Business Decision Support Tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(cfg, out), newLogsCmd(cfg, out))
	return root
}

func newAnalyzeCmd(cfg *config.ReportConfig, out io.Writer) *cobra.Command {
	serverURL := cfg.ServerURL

	cmd := &cobra.Command{
		Use:   "analyze <company name>",
		Short: "Generate a business analysis for a company",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := httpapi.NewClient(serverURL, infrahttp.NewHTTPClient(cfg.Timeout))
			s := usecase.NewSession(client)
			s.SetCompany(strings.Join(args, " "))
			s.Submit(cmd.Context())

			st := s.State()
			if st.Error != "" {
				fmt.Fprintln(out, st.Error)
				return reportedError{msg: st.Error}
			}
			return view.RenderText(out, view.BuildSections(st.Result))
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", serverURL, "analysis API base URL (env REPORT_SERVER_URL)")
	return cmd
}
