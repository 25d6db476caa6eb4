package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HACKERPRO961/fen-oyunu/internal/aiquiz"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt sent to the model for a request",
		RunE: func(cmd *cobra.Command, args []string) error {
			grade, _ := cmd.Flags().GetString("grade")
			unit, _ := cmd.Flags().GetString("unit")
			topic, _ := cmd.Flags().GetString("topic")
			count, _ := cmd.Flags().GetInt("count")

			_, err := fmt.Fprintln(cmd.OutOrStdout(), aiquiz.BuildPrompt(grade, unit, topic, count))
			return err
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().Int("count", 5, "number of questions to ask for")
	return cmd
}
