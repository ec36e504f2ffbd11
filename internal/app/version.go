// internal/app/version.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"labtool/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the labtool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "labtool version %s\n", version.Version)
			return err
		},
	}
}
