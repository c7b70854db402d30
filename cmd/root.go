package cmd

import (
	"fmt"
	"github.com/ValentinKolb/redis-udf/cmd/kv"
	"github.com/ValentinKolb/redis-udf/cmd/util"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "redis-udf",
		Short: "redis functions for relational database hosts",
		Long: fmt.Sprintf(`redis-udf (v%s)

Database callable functions (redis_set, redis_sadd, redis_srem,
redis_servers_set) that forward key-value commands to a Redis server
over one shared connection. The kv commands call them the same way
the database host does.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of redis-udf",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("redis-udf v%s\n", Version)
		},
	}

	// configCmd prints the configuration resolved from flags, env and .env files
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the resolved remote store configuration",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return util.BindCommandFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := util.GetServerConfig()
			if err != nil {
				return err
			}
			fmt.Print(config.String())
			return nil
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupServerFlags(configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
