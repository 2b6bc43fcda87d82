package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rohancherukuri/portfolio/internal/theme"
)

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Preview the theme colours, including content overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, _, err := a.site()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), theme.Swatches(th.Palette))
			return nil
		},
	}
}
