package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skillswap-platform/skillswap/pkg/session"
	"github.com/skillswap-platform/skillswap/pkg/skillswap"
)

func newLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and store credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, storage, err := newClient(cmd)
			if err != nil {
				return err
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			store := session.NewStore(storage, client)
			if err := store.Login(cmd.Context(), args[0], password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Println("Logged in.")
			if args[0] == session.AdminEmail {
				fmt.Println("Admin commands are available.")
			}
			return nil
		},
	}
	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := credentialsPath()
			if err != nil {
				return err
			}
			store := session.NewStore(session.NewFileStorage(path), nil)
			store.Logout()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, storage, err := newClient(cmd)
			if err != nil {
				return err
			}

			store := session.NewStore(storage, client)
			if !store.IsAuthenticated() {
				fmt.Println("Not logged in.")
				return nil
			}

			user, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			store.SetUser(&session.User{ID: user.ID, Email: user.Email, Name: user.Name})
			if store.IsAdmin() {
				fmt.Println("Role: admin")
			}
			return nil
		},
	}
}

func newSignupCommand() *cobra.Command {
	var name, location, bio string
	var public bool

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			err = client.Signup(cmd.Context(), skillswap.SignupRequest{
				Email:    args[0],
				Password: password,
				Name:     name,
				Location: location,
				Bio:      bio,
				IsPublic: public,
			})
			if err != nil {
				return err
			}

			fmt.Println("Account created. Check your email for the verification code,")
			fmt.Println("then run `skillswap verify <email> <otp>`.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&location, "location", "", "location shown on the profile")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().BoolVar(&public, "public", true, "make the profile visible to others")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <email> <otp>",
		Short: "Verify an email address with the mailed code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.VerifyEmail(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Email verified. You can now log in.")
			return nil
		},
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	// Piped input, e.g. in scripts.
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
