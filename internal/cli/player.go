package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster, starters first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster
			if err := client.Get(cmd.Context(), "/api/v1/players", &result); err != nil {
				return err
			}
			return NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a single player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get(cmd.Context(), playerPath(args[0]), &result); err != nil {
				return err
			}
			return NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
		},
	}
}

func newAddCmd() *cobra.Command {
	var name, position, status string
	var age int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(position) == "" {
				return fmt.Errorf("--name and --position must not be blank")
			}

			req := map[string]any{
				"name":     name,
				"age":      age,
				"position": position,
				"status":   status,
			}
			var result Player

			if err := client.Post(cmd.Context(), "/api/v1/players", req, &result); err != nil {
				return err
			}

			return NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Player age (required)")
	cmd.Flags().StringVar(&position, "position", "", "Playing position (required)")
	cmd.Flags().StringVar(&status, "status", "", "starter or substitute (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), playerPath(args[0])); err != nil {
				return err
			}
			return NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Player %s removed.", args[0]))
		},
	}
}

func newPositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position NAME POSITION",
		Short: "Assign a new position to a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"position": args[1]}
			var result Player

			if err := client.Patch(cmd.Context(), playerPath(args[0], "position"), req, &result); err != nil {
				return err
			}

			return NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
		},
	}
}
