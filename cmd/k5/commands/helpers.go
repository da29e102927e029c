package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/k5ops/k5go/pkg/k5"
	"github.com/k5ops/k5go/pkg/k5client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// createClient builds a k5.Client from the effective configuration: flags,
// K5_* environment variables, and ~/.k5/config.yml, in that order.
func createClient(ctx context.Context) (k5.Client, error) {
	region := viper.GetString("region")
	if region == "" {
		return nil, k5.ErrRegionRequired
	}

	config := &k5.Config{
		Region:    region,
		ProjectID: viper.GetString("project-id"),
	}

	if token := viper.GetString("token"); token != "" {
		config.ProjectToken = token
	} else {
		config.Username = viper.GetString("username")
		config.Password = viper.GetString("password")
		config.Domain = viper.GetString("domain")
		config.ProjectName = viper.GetString("project-name")
	}

	client, err := k5client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderEncoded writes data as JSON or YAML and reports whether the output
// format was one of the two. Table rendering stays with the caller because
// every resource has its own columns.
func renderEncoded(data interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(data)
	default:
		return false, nil
	}
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("k5 version %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
