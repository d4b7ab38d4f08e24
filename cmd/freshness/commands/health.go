package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/freshness/internal/app"
	"go.trai.ch/freshness/internal/core/domain"
)

func (c *CLI) newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Compare one input's locked revision with the head of the branch it tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")
			return c.app.Health(cmd.Context(), app.HealthOptions{
				CheckOptions: checkOptions(cmd),
				Input:        input,
			})
		},
	}
	addCheckFlags(cmd)
	cmd.Flags().StringP("input", "i", domain.DefaultInput, "Flake input to check")
	return cmd
}
