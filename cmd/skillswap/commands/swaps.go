package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillswap-platform/skillswap/pkg/skillswap"
)

func newSwapsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swaps",
		Short: "Propose and manage skill swaps",
	}

	cmd.AddCommand(
		newSwapsListCommand(),
		newSwapsProposeCommand(),
		newSwapsAcceptCommand(),
		newSwapsRejectCommand(),
		newSwapsCompleteCommand(),
	)

	return cmd
}

func newSwapsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your swaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			swaps, err := client.Swaps(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tREQUESTER\tRECEIVER")
			for _, s := range swaps {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Status, s.RequesterID, s.ReceiverID)
			}
			return w.Flush()
		},
	}
}

func newSwapsProposeCommand() *cobra.Command {
	var offeredSkill, receiver, wantedSkill string

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Propose a swap to another user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			swap, err := client.CreateSwap(cmd.Context(), skillswap.CreateSwapRequest{
				RequesterSkillID: offeredSkill,
				ReceiverID:       receiver,
				ReceiverSkillID:  wantedSkill,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Swap %s proposed.\n", swap.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&offeredSkill, "offer", "", "id of the skill you offer")
	cmd.Flags().StringVar(&receiver, "to", "", "id of the user you propose to")
	cmd.Flags().StringVar(&wantedSkill, "want", "", "id of their skill you want")
	_ = cmd.MarkFlagRequired("offer")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("want")

	return cmd
}

func newSwapsAcceptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id>",
		Short: "Accept a pending swap proposed to you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if _, err := client.AcceptSwap(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Swap accepted.")
			return nil
		},
	}
}

func newSwapsRejectCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending swap proposed to you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if _, err := client.RejectSwap(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			fmt.Println("Swap rejected.")
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "optional reason shown to the requester")

	return cmd
}

func newSwapsCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark an accepted swap as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if _, err := client.CompleteSwap(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Swap completed. You can now rate your partner with `skillswap rate`.")
			return nil
		},
	}
}

func newRateCommand() *cobra.Command {
	var rater, rated, comment string
	var rating int

	cmd := &cobra.Command{
		Use:   "rate <swap-id>",
		Short: "Rate the other party of a completed swap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			if rater == "" {
				user, err := client.Profile(cmd.Context())
				if err != nil {
					return err
				}
				rater = user.ID
			}

			_, err = client.CreateRating(cmd.Context(), skillswap.CreateRatingRequest{
				SwapID:  args[0],
				RaterID: rater,
				RatedID: rated,
				Rating:  rating,
				Comment: comment,
			})
			if err != nil {
				return err
			}
			fmt.Println("Rating recorded.")
			return nil
		},
	}

	cmd.Flags().StringVar(&rater, "as", "", "your user id (defaults to the logged-in user)")
	cmd.Flags().StringVar(&rated, "user", "", "id of the user you are rating")
	cmd.Flags().IntVar(&rating, "rating", 0, "score from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "optional feedback")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
