package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HACKERPRO961/fen-oyunu/internal/system"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "fenquiz", system.Version)
		},
	}
}
