package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillswap-platform/skillswap/pkg/skillswap"
)

func newSkillsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Browse and manage skills",
	}

	cmd.AddCommand(
		newSkillsListCommand(),
		newSkillsAddCommand(),
		newSkillsUpdateCommand(),
		newSkillsRemoveCommand(),
	)

	return cmd
}

func newSkillsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			skills, err := client.Skills(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tLEVEL\tTYPE\tSTATUS")
			for _, s := range skills {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Category, s.Level, s.Type, s.Status)
			}
			return w.Flush()
		},
	}
}

func newSkillsAddCommand() *cobra.Command {
	var description, category, level, skillType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Offer or request a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			skill, err := client.CreateSkill(cmd.Context(), skillswap.CreateSkillRequest{
				Name:        args[0],
				Description: description,
				Category:    category,
				Level:       level,
				Type:        skillType,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Skill %s created; it is pending moderation.\n", skill.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "what you can teach or want to learn (at least 10 characters)")
	cmd.Flags().StringVar(&category, "category", "", "skill category")
	cmd.Flags().StringVar(&level, "level", "", "proficiency level")
	cmd.Flags().StringVar(&skillType, "type", "offer", "offer or request")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}

func newSkillsUpdateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a skill description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if _, err := client.UpdateSkill(cmd.Context(), args[0], description); err != nil {
				return err
			}
			fmt.Println("Skill updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description (at least 10 characters)")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newSkillsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete one of your skills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.DeleteSkill(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Skill deleted.")
			return nil
		},
	}
}
