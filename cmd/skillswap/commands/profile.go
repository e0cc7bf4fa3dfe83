package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillswap-platform/skillswap/pkg/skillswap"
)

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}

	cmd.AddCommand(
		newProfileShowCommand(),
		newProfileUpdateCommand(),
		newProfilePhotoCommand(),
	)

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			user, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Name:     %s\n", user.Name)
			fmt.Printf("Email:    %s\n", user.Email)
			if user.Location != "" {
				fmt.Printf("Location: %s\n", user.Location)
			}
			if user.Bio != "" {
				fmt.Printf("Bio:      %s\n", user.Bio)
			}
			fmt.Printf("Public:   %t\n", user.IsPublic)
			for _, slot := range user.Availability {
				fmt.Printf("Available: %s %s-%s\n", slot.Day, slot.Start, slot.End)
			}
			return nil
		},
	}
}

func newProfileUpdateCommand() *cobra.Command {
	var bio, location string
	var public bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			// Only send the flags that were set so untouched fields survive.
			var req skillswap.UpdateProfileRequest
			if cmd.Flags().Changed("bio") {
				req.Bio = &bio
			}
			if cmd.Flags().Changed("location") {
				req.Location = &location
			}
			if cmd.Flags().Changed("public") {
				req.IsPublic = &public
			}

			if _, err := client.UpdateProfile(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&location, "location", "", "location shown on the profile")
	cmd.Flags().BoolVar(&public, "public", true, "make the profile visible to others")

	return cmd
}

func newProfilePhotoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "photo <file>",
		Short: "Upload a profile photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open photo: %w", err)
			}
			defer f.Close()

			url, err := client.UploadProfilePhoto(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}
}
