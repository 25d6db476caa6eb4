package cli

import (
	"github.com/spf13/cobra"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/system"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fenquiz",
		Short:         system.ServiceName,
		Long:          "Generates multiple-choice science questions for Turkish middle school classes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), config.Load())
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newLambdaCmd())
	root.AddCommand(newPromptCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		config.Logger.WithError(err).Error("command failed")
	}
	return err
}

// addRequestFlags registers the grade, unit and topic flags shared by the
// offline commands.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("grade", "", "grade level, e.g. 5")
	cmd.Flags().String("unit", "", "curriculum unit")
	cmd.Flags().String("topic", "", "topic within the unit")
}
