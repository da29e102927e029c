package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/k5ops/k5go/cmd/k5/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "k5",
	Short: "Fujitsu K5 IaaS CLI",
	Long: `A command-line interface for the Fujitsu K5 IaaS APIs.

This CLI covers networking (networks, subnets, ports, routers, security
groups, floating IPs), cross-project network connectors, the image
registry, and block storage volumes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.k5/config.yml)")
	rootCmd.PersistentFlags().StringP("region", "r", "", "K5 region, for example fi-1")
	rootCmd.PersistentFlags().StringP("token", "t", "", "project-scoped authentication token")
	rootCmd.PersistentFlags().String("project-id", "", "project ID")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("project-id", rootCmd.PersistentFlags().Lookup("project-id"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewNetworksCommand())
	rootCmd.AddCommand(commands.NewSubnetsCommand())
	rootCmd.AddCommand(commands.NewPortsCommand())
	rootCmd.AddCommand(commands.NewRoutersCommand())
	rootCmd.AddCommand(commands.NewSecurityGroupsCommand())
	rootCmd.AddCommand(commands.NewFloatingIPsCommand())
	rootCmd.AddCommand(commands.NewConnectorsCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
	rootCmd.AddCommand(commands.NewVolumesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".k5")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.k5/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("K5")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
