package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameCellCmd("reveal", "Reveal a cell, flooding blank regions"))
	cmd.AddCommand(newGameCellCmd("chord", "Reveal the neighbours of a numbered cell whose flags are placed"))
	cmd.AddCommand(newGameCellCmd("flag", "Toggle the flag on a hidden cell"))
	cmd.AddCommand(newGameResetCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var (
		width, height, mines int
		seed                 uint64
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		Long: `Create a new game. Omitted dimensions use the server's defaults.

Mines are placed on the first reveal, never on or next to that cell. Games
created with the same --seed and opened at the same cell share a layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if width != 0 {
				req["width"] = width
			}
			if height != 0 {
				req["height"] = height
			}
			if cmd.Flags().Changed("mines") {
				req["mine_count"] = mines
			}
			if cmd.Flags().Changed("seed") {
				req["seed"] = seed
			}

			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Board width (server default if unset)")
	cmd.Flags().IntVar(&height, "height", 0, "Board height (server default if unset)")
	cmd.Flags().IntVar(&mines, "mines", 0, "Number of mines (server default if unset)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible layout")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game's board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(gamePath(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// newGameCellCmd builds one of the per-cell actions, which all post {x, y}
// to /games/{id}/<action>
func newGameCellCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id> <x> <y>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x: %w", err)
			}

			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y: %w", err)
			}

			req := map[string]int{"x": x, "y": y}
			var result Game

			if err := client.Post(gamePath(args[0])+"/"+action, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Clear the board and start a new epoch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post(gamePath(args[0])+"/reset", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(gamePath(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Game %s deleted", args[0]))
			return nil
		},
	}
}

func gamePath(id string) string {
	return "/api/v1/games/" + id
}
