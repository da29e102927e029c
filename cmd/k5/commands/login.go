package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/k5ops/k5go/pkg/k5client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// tokenProvider is implemented by clients that can hand out their current
// token.
type tokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username    string
		domain      string
		projectName string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a project-scoped token",
		Long: `Authenticate against the identity service with username and password
and print the resulting project-scoped token and project ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			region := viper.GetString("region")
			if region == "" {
				return k5.ErrRegionRequired
			}

			if username == "" {
				fmt.Print("Username: ")

				reader := bufio.NewReader(os.Stdin)

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading username: %w", err)
				}

				username = strings.TrimSpace(line)
			}

			fmt.Print("Password: ")

			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			fmt.Println()

			ctx := context.Background()

			client, err := k5client.NewWithPassword(ctx, region, username, string(bytePassword), domain, projectName)
			if err != nil {
				return err
			}

			provider, ok := client.(tokenProvider)
			if !ok {
				return k5.ErrNotAuthenticated
			}

			token, err := provider.GetToken(ctx)
			if err != nil {
				return fmt.Errorf("authenticating: %w", err)
			}

			fmt.Printf("Project ID: %s\n", client.ProjectID())
			fmt.Printf("Token: %s\n", token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "domain name")
	cmd.Flags().StringVarP(&projectName, "project-name", "p", "", "project name to scope the token to")

	return cmd
}
