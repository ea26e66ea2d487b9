package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/answersfile"
	"github.com/abhisek/interference/internal/diagnosis"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers-file>",
	Short: "Classify a YAML or JSON answers file without the interactive UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partial, _ := cmd.Flags().GetBool("partial")
		format, _ := cmd.Flags().GetString("format")

		f, err := parseTableFormat(format)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		rep, err := scoreFile(args[0], partial)
		if err != nil {
			logger.Warn("score failed", zap.String("file", args[0]), zap.Error(err))
			return err
		}
		logger.Info("scored answers file",
			zap.String("file", args[0]),
			zap.Stringer("dominant", rep.Dominant),
			zap.Int("total_signals", rep.TotalSignals),
			zap.Int("answered", rep.Answered))

		printReport(cmd.OutOrStdout(), rep, f)
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("partial", false, "Classify even if some questions are unanswered")
	scoreCmd.Flags().String("format", string(formatText), "Output format: text or markdown")
}

// scoreFile loads and classifies an answers file. Unless partial is set,
// every question must be answered.
func scoreFile(path string, partial bool) (*diagnosis.Report, error) {
	answers, err := answersfile.Load(path)
	if err != nil {
		return nil, err
	}
	if missing := answersfile.Missing(answers); len(missing) > 0 && !partial {
		return nil, fmt.Errorf("%d questions unanswered (%s); pass --partial to score anyway",
			len(missing), strings.Join(missing, ", "))
	}

	res, err := diagnosis.Classify(answers)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return diagnosis.NewReport(res), nil
}

func printReport(out io.Writer, rep *diagnosis.Report, f tableFormat) {
	if rep.Dominant.Valid() {
		fmt.Fprintf(out, "Dominant interference: %s\n", rep.Headline)
	} else {
		fmt.Fprintln(out, "No dominant pattern")
	}
	fmt.Fprintf(out, "%s\n\n", rep.Diagnosis)

	if len(rep.Breakdown) > 0 {
		w := newTable()
		w.AppendHeader(table.Row{"Category", "Signals", "Strength"})
		for _, l := range rep.Breakdown {
			w.AppendRow(table.Row{l.Title, fmt.Sprintf("%d/%d", l.Count, l.Total), string(l.Strength)})
		}
		w.AppendFooter(table.Row{"Total", rep.TotalSignals, ""})
		fmt.Fprintln(out, renderTable(w, f))
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d of %d answers signalled an interference\n", rep.TotalSignals, rep.Answered)
}
