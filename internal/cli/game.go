package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/numbergamble-go/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameCountCmd())
	cmd.AddCommand(newGamePlayersCmd())
	cmd.AddCommand(newGameRollsCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameContinueCmd())
	cmd.AddCommand(newGameFoldCmd())
	cmd.AddCommand(newGameResolveCmd())

	return cmd
}

// parseGameID validates a game id argument
func parseGameID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return id, nil
}

func newGameCreateCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"capacity": capacity}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", model.MinCapacity, "Number of seats (2-5)")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a game's full record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Get(fmt.Sprintf("/api/v1/games/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the total number of games ever created",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameCount

			if err := client.Get("/api/v1/games/count", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players <id>",
		Short: "List a game's members and their decisions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result PlayerList
			if err := client.Get(fmt.Sprintf("/api/v1/games/%d/players", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRollsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rolls <id>",
		Short: "Show your sealed handles for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Handles
			if err := client.Get(fmt.Sprintf("/api/v1/games/%d/rolls", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	var payment uint64

	cmd := &cobra.Command{
		Use:   "join <id>",
		Short: "Join a game, paying the join fee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			req := map[string]uint64{"payment": payment}
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/join", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&payment, "payment", model.JoinFee, "Fee to send, in wei")

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start a full game (creator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/start", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameContinueCmd() *cobra.Command {
	var payment uint64

	cmd := &cobra.Command{
		Use:   "continue <id>",
		Short: "Continue to the resolution, paying the continue fee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			req := map[string]any{"continuing": true, "payment": payment}
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/decide", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&payment, "payment", model.ContinueFee, "Fee to send, in wei")

	return cmd
}

func newGameFoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fold <id>",
		Short: "Forfeit your stake in a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			req := map[string]any{"continuing": false}
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/decide", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve a ready game, paying the pot to the winner (creator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/resolve", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
