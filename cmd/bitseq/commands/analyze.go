package commands

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bitseq/internal/domain"
	"bitseq/internal/services/randtest"
	"bitseq/internal/store"
)

// analyze: run the randomness tests over every sequence named in --settings.
func analyzeCmd(o *options) *cobra.Command {
	var settingsPath string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run Serial, Maurer and Cumulative sums tests over stored sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reports domain.ReportStore = store.NewReportFileStore()

			settings, err := reports.LoadSettings(settingsPath)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			seqs, err := reports.LoadSequences(settings.InputPath)
			if err != nil {
				return fmt.Errorf("load sequences: %w", err)
			}

			labels := make([]string, 0, len(seqs))
			for label := range seqs {
				labels = append(labels, label)
			}
			sort.Strings(labels)

			var analyzer domain.Analyzer = randtest.Analyzer{L: settings.L, Q: settings.Q, Log: o.log}
			results := make([]domain.TestResult, 0, len(labels))
			for _, label := range labels {
				res, err := analyzer.Run(label, seqs[label])
				if err != nil {
					return fmt.Errorf("analyze %q: %w", label, err)
				}
				o.log.WithFields(logrus.Fields{"service": "analyze", "label": label, "bits": len(seqs[label])}).Debug("tested")
				results = append(results, res)
			}

			if err := reports.WriteReport(settings.OutputPath, results); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tests completed: %d sequence(s), report written to %s\n", len(results), settings.OutputPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&settingsPath, "settings", "settings.json", "JSON settings with path_input, path_output, L and Q")
	return cmd
}
