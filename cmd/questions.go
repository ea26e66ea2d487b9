package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/interference/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		format, _ := cmd.Flags().GetString("format")

		f, err := parseTableFormat(format)
		if err != nil {
			return err
		}
		return listQuestions(cmd.OutOrStdout(), category, f)
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "Filter by category tag (e.g. threshold_fear)")
	questionsCmd.Flags().String("format", string(formatText), "Output format: text or markdown")
}

func listQuestions(out io.Writer, category string, f tableFormat) error {
	questions := catalog.AllQuestions()
	if category != "" {
		c, err := catalog.ParseCategory(category)
		if err != nil {
			return err
		}
		questions = questions[:0]
		for _, id := range catalog.QuestionsFor(c) {
			q, err := catalog.GetQuestion(id)
			if err != nil {
				return err
			}
			questions = append(questions, q)
		}
	}

	w := newTable()
	w.AppendHeader(table.Row{"ID", "Category", "Question"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 70},
	})
	for _, q := range questions {
		tags := make([]string, 0, len(q.Categories))
		for _, c := range q.Categories {
			tags = append(tags, c.String())
		}
		w.AppendRow(table.Row{q.ID, strings.Join(tags, ", "), q.Text})
	}

	fmt.Fprintln(out, renderTable(w, f))
	fmt.Fprintf(out, "\n%d questions\n", len(questions))
	return nil
}
