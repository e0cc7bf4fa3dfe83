package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillswap-platform/skillswap/pkg/session"
	"github.com/skillswap-platform/skillswap/pkg/skillswap"
)

const defaultAPIURL = "http://localhost:8000"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skillswap",
		Short: "Command line client for the Skill Swap platform",
	}

	rootCmd.PersistentFlags().String("api-url", "", "base URL of the API (defaults to $SKILLSWAP_API_URL)")

	rootCmd.AddCommand(
		newLoginCommand(),
		newLogoutCommand(),
		newWhoamiCommand(),
		newSignupCommand(),
		newVerifyCommand(),
		newProfileCommand(),
		newSkillsCommand(),
		newSwapsCommand(),
		newRateCommand(),
		newAdminCommand(),
	)

	return rootCmd
}

func apiURL(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		return v
	}
	if v := os.Getenv("SKILLSWAP_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

func credentialsPath() (string, error) {
	if v := os.Getenv("SKILLSWAP_CREDENTIALS"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".skillswap")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return filepath.Join(dir, "credentials.json"), nil
}

// newClient builds the API client backed by on-disk credentials. The
// navigator hook fires when the server rejects the stored token.
func newClient(cmd *cobra.Command) (*skillswap.Client, session.TokenStorage, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, nil, err
	}
	storage := session.NewFileStorage(path)
	client := skillswap.New(apiURL(cmd), storage, skillswap.WithNavigator(skillswap.NavigatorFunc(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Please log in again with `skillswap login`.")
	})))
	return client, storage, nil
}
