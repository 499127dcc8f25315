package cli

import (
	"fmt"

	"github.com/a11ykit/achecker-client/internal/validate"

	"github.com/spf13/cobra"
)

func newGuidesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guides",
		Short: "List guideline profiles accepted by the checking service",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, g := range validate.KnownGuides {
				marker := " "
				if g == validate.DefaultGuide {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, g)
			}
		},
	}
}
