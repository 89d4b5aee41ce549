package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map administration commands",
	}

	cmd.AddCommand(newMapCreateCmd())
	cmd.AddCommand(newMapGetCmd())
	cmd.AddCommand(newMapListCmd())
	cmd.AddCommand(newMapUpdateCmd())
	cmd.AddCommand(newMapDeleteCmd())
	cmd.AddCommand(newMapPlayersCmd())

	return cmd
}

func newMapCreateCmd() *cobra.Command {
	var name string
	var width, height int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new map",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":   name,
				"width":  width,
				"height": height,
			}
			var result Map

			if err := client.Post("/api/v1/maps", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Map name (required)")
	cmd.Flags().IntVar(&width, "width", 10, "Grid width")
	cmd.Flags().IntVar(&height, "height", 10, "Grid height")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMapGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a map by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Map

			if err := client.Get("/api/v1/maps/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMapListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Map

			if err := client.Get("/api/v1/maps", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(MapList{Maps: result})
			return nil
		},
	}
}

func newMapUpdateCmd() *cobra.Command {
	var name string
	var width, height int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a map's name or size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("width") {
				req["width"] = width
			}
			if cmd.Flags().Changed("height") {
				req["height"] = height
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one of --name, --width, --height is required")
			}

			var result Map
			if err := client.Patch("/api/v1/maps/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New map name")
	cmd.Flags().IntVar(&width, "width", 0, "New grid width")
	cmd.Flags().IntVar(&height, "height", 0, "New grid height")

	return cmd
}

func newMapDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/maps/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Map deleted")
			return nil
		},
	}
}

func newMapPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players <name>",
		Short: "List players on a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/maps/"+args[0]+"/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(PlayerList{Players: result})
			return nil
		},
	}
}
