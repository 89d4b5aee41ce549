package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Avatar management commands",
	}

	cmd.AddCommand(newPlayerEnterCmd())
	cmd.AddCommand(newPlayerMeCmd())
	cmd.AddCommand(newPlayerUpdateCmd())

	return cmd
}

func newPlayerEnterCmd() *cobra.Command {
	var mapName, avatarURL string
	var x, y int

	cmd := &cobra.Command{
		Use:   "enter",
		Short: "Enter the world, creating an avatar if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"avatar_url": avatarURL,
				"x":          x,
				"y":          y,
			}
			if mapName != "" {
				req["map_name"] = mapName
			}
			var result Player

			if err := client.Post("/api/v1/players/enter", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mapName, "map", "", "Map name to spawn on")
	cmd.Flags().StringVar(&avatarURL, "avatar", "", "Avatar image URL (required)")
	cmd.Flags().IntVar(&x, "x", 0, "Spawn x coordinate")
	cmd.Flags().IntVar(&y, "y", 0, "Spawn y coordinate")
	_ = cmd.MarkFlagRequired("avatar")

	return cmd
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var mapName, avatarURL string
	var x, y int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the current avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("map") {
				req["map_name"] = mapName
			}
			if cmd.Flags().Changed("avatar") {
				req["avatar_url"] = avatarURL
			}
			if cmd.Flags().Changed("x") {
				req["x"] = x
			}
			if cmd.Flags().Changed("y") {
				req["y"] = y
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one of --map, --avatar, --x, --y is required")
			}

			var result Player
			if err := client.Patch("/api/v1/players/me", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&mapName, "map", "", "Map name to move to")
	cmd.Flags().StringVar(&avatarURL, "avatar", "", "New avatar image URL")
	cmd.Flags().IntVar(&x, "x", 0, "New x coordinate")
	cmd.Flags().IntVar(&y, "y", 0, "New y coordinate")

	return cmd
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <up|down|left|right>",
		Short: "Move the avatar one cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"direction": args[0]}
			var result MoveResult

			if err := client.Post("/api/v1/players/me/move", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newNearbyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearby <map>",
		Short: "Show players adjacent to the avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NearbyResult

			if err := client.Get("/api/v1/maps/"+args[0]+"/nearby", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
