package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/HACKERPRO961/fen-oyunu/internal/aiquiz"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Validate saved model output and print the resulting questions",
		Long:  "Reads raw model output from a file, or from stdin when the file is omitted or \"-\".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			grade, _ := cmd.Flags().GetString("grade")
			unit, _ := cmd.Flags().GetString("unit")
			topic, _ := cmd.Flags().GetString("topic")

			report, err := aiquiz.Parse(string(raw), aiquiz.QuizRequest{
				Grade: grade,
				Unit:  unit,
				Topic: topic,
			})
			if err != nil {
				return fmt.Errorf("parse model output: %w", err)
			}

			for _, d := range report.Dropped {
				fmt.Fprintf(cmd.ErrOrStderr(), "dropped item %d: %s\n", d.Index, d.Reason)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(aiquiz.GenerateResponse{
				Success:   true,
				Questions: report.Questions,
				Count:     len(report.Questions),
				Message:   fmt.Sprintf("%d yapay zeka sorusu üretildi", len(report.Questions)),
			})
		},
	}
	addRequestFlags(cmd)
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}
