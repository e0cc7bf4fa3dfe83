package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration (admin account only)",
	}

	cmd.AddCommand(
		newAdminUsersCommand(),
		newAdminBanCommand(),
		newAdminSkillsCommand(),
		newAdminBroadcastCommand(),
	)

	return cmd
}

func newAdminUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			users, err := client.AdminUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tBANNED")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", u.ID, u.Email, u.Name, u.IsBanned)
			}
			return w.Flush()
		},
	}
}

func newAdminBanCommand() *cobra.Command {
	var unban bool

	cmd := &cobra.Command{
		Use:   "ban <user-id>",
		Short: "Ban or unban a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.AdminBanUser(cmd.Context(), args[0], !unban); err != nil {
				return err
			}
			if unban {
				fmt.Println("User unbanned.")
			} else {
				fmt.Println("User banned.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unban, "undo", false, "lift the ban instead")

	return cmd
}

func newAdminSkillsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Moderate pending skills",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "pending",
			Short: "List skills awaiting moderation",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, _, err := newClient(cmd)
				if err != nil {
					return err
				}

				skills, err := client.AdminPendingSkills(cmd.Context())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tOWNER")
				for _, s := range skills {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.UserID)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "approve <id>",
			Short: "Approve a pending skill",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, _, err := newClient(cmd)
				if err != nil {
					return err
				}
				if err := client.AdminApproveSkill(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Println("Skill approved.")
				return nil
			},
		},
		newAdminRejectSkillCommand(),
	)

	return cmd
}

func newAdminRejectSkillCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.AdminRejectSkill(cmd.Context(), args[0], reason); err != nil {
				return err
			}
			fmt.Println("Skill rejected.")
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in the audit trail")

	return cmd
}

func newAdminBroadcastCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "broadcast <message...>",
		Short: "Send an announcement to all users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.AdminBroadcast(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println("Broadcast sent.")
			return nil
		},
	}
}
