package kv

import (
	"github.com/ValentinKolb/redis-udf/cmd/util"
	"github.com/ValentinKolb/redis-udf/rpc/client"
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/ValentinKolb/redis-udf/rpc/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

var (
	functionServer *server.FunctionServer

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:                "kv",
		Short:              "Call the redis functions the way the database host does",
		PersistentPreRunE:  setupFunctionServer,
		PersistentPostRunE: teardownFunctionServer,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add remote store flags to the KV command
	util.SetupServerFlags(KeyValueCommands)

	KeyValueCommands.PersistentFlags().Bool("metrics", false, util.WrapString("Print all metrics in Prometheus text format when the command is done"))

	// Add subcommands
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(saddCmd)
	KeyValueCommands.AddCommand(sremCmd)
	KeyValueCommands.AddCommand(serversSetCmd)
	KeyValueCommands.AddCommand(functionsCmd)
	KeyValueCommands.AddCommand(batchCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupFunctionServer initializes logging and the functions with the shared connection
func setupFunctionServer(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	if err := common.InitLoggers(util.GetLogLevel()); err != nil {
		return err
	}

	config, err := util.GetServerConfig()
	if err != nil {
		return err
	}

	functionServer, err = server.NewFunctionServer(*config, client.NewDialer())
	return err
}

// teardownFunctionServer prints the metrics (if requested) and closes the connection
func teardownFunctionServer(_ *cobra.Command, _ []string) error {
	if viper.GetBool("metrics") {
		common.WriteMetrics(os.Stdout)
	}
	return functionServer.Close()
}
