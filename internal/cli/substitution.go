package cli

import (
	"github.com/spf13/cobra"
)

func newSubCmd() *cobra.Command {
	var incoming, outgoing string

	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Bring a substitute on for a starter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"incoming": incoming,
				"outgoing": outgoing,
			}
			var result Substitution

			if err := client.Post(cmd.Context(), "/api/v1/substitutions", req, &result); err != nil {
				return err
			}

			return NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
		},
	}

	cmd.Flags().StringVar(&incoming, "in", "", "Incoming substitute (required)")
	cmd.Flags().StringVar(&outgoing, "out", "", "Outgoing starter (required)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
