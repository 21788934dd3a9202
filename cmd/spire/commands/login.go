package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/spirekit/spire-client/internal/constants"
	"github.com/spirekit/spire-client/pkg/spire"
)

// NewLoginCommand creates the login command. It verifies the credentials with
// a minimal API call before persisting the connection settings.
func NewLoginCommand() *cobra.Command {
	var savePassword bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against a Spire server",
		Long:  "Verify credentials against a Spire company database and save the connection settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(savePassword)
		},
	}

	cmd.Flags().BoolVar(&savePassword, "save-password", false, "store the password in the config file")

	return cmd
}

func runLoginCommand(savePassword bool) error {
	reader := bufio.NewReader(os.Stdin)

	host := viper.GetString("host")
	if host == "" {
		fmt.Print("Host: ")

		line, _ := reader.ReadString('\n')
		host = strings.TrimSpace(line)
	}

	company := viper.GetString("company")
	if company == "" {
		fmt.Print("Company: ")

		line, _ := reader.ReadString('\n')
		company = strings.TrimSpace(line)
	}

	username := viper.GetString("username")
	if username == "" {
		fmt.Print("Username: ")

		line, _ := reader.ReadString('\n')
		username = strings.TrimSpace(line)
	}

	password := viper.GetString("password")
	if password == "" {
		fmt.Print("Password: ")

		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		password = string(bytePassword)

		fmt.Println()
	}

	viper.Set("host", host)
	viper.Set("company", company)
	viper.Set("username", username)
	viper.Set("password", password)

	client, err := CreateClient()
	if err != nil {
		return err
	}

	// A one-record list is the cheapest authenticated round trip.
	if _, err := client.Customers().List(context.Background(), &spire.ListOptions{Limit: 1}); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := persistLogin(host, company, username, password, savePassword); err != nil {
		return err
	}

	fmt.Printf("Logged in to %s (company %s) as %s\n", host, company, username)

	return nil
}

func persistLogin(host, company, username, password string, savePassword bool) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configDir := filepath.Join(home, ".spire")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	saved := viper.New()
	saved.Set("host", host)
	saved.Set("company", company)
	saved.Set("username", username)

	if savePassword {
		saved.Set("password", password)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := saved.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
