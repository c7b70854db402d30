package kv

import (
	"bufio"
	"fmt"
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"github.com/ValentinKolb/redis-udf/rpc/server"
	"github.com/spf13/cobra"
	"os"
	"strconv"
	"strings"
)

var (
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key (redis_set)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(server.FnSet, udf.StringArgs(args[0], args[1]))
		},
	}
	saddCmd = &cobra.Command{
		Use:   "sadd [key] [member]",
		Short: "Adds a member to the set stored at key (redis_sadd)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(server.FnSAdd, udf.StringArgs(args[0], args[1]))
		},
	}
	sremCmd = &cobra.Command{
		Use:   "srem [key] [member]",
		Short: "Removes a member from the set stored at key (redis_srem)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(server.FnSRem, udf.StringArgs(args[0], args[1]))
		},
	}
	serversSetCmd = &cobra.Command{
		Use:   "servers-set [host] [port] [password]",
		Short: "Points the shared connection to another server and checks it is reachable (redis_servers_set)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs, err := parseCallArgs(server.FnServersSet, args)
			if err != nil {
				return err
			}
			return call(server.FnServersSet, callArgs)
		},
	}
	functionsCmd = &cobra.Command{
		Use:   "functions",
		Short: "Lists the registered functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range functionServer.Registry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}
	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Reads one call per line from stdin (e.g. 'redis_set key value') and runs them over one connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(os.Stdin)
			failed := 0
			for lineNo := 1; scanner.Scan(); lineNo++ {
				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
					continue
				}
				callArgs, err := parseCallArgs(fields[0], fields[1:])
				if err == nil {
					err = call(fields[0], callArgs)
				}
				if err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d calls failed", failed)
			}
			return nil
		},
	}
)

// call invokes a function through the registry and prints the result
func call(name string, args udf.Args) error {
	res, err := functionServer.Registry().Call(name, args)
	if err != nil {
		return err
	}

	fmt.Printf("%s: result=%d null=%t error=%t\n", name, res.Value, res.IsNull, res.IsError)
	if res.IsError {
		return fmt.Errorf("%s failed with result %d", name, res.Value)
	}
	return nil
}

// parseCallArgs types the command line arguments the way the host would for the
// literals of a statement. The port of redis_servers_set is an integer, everything else a string.
func parseCallArgs(name string, values []string) (udf.Args, error) {
	args := udf.Args{}
	for i, v := range values {
		if name == server.FnServersSet && i == 1 {
			port, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return udf.Args{}, fmt.Errorf("port must be a number: %w", err)
			}
			args = args.Append(udf.IntArg, port)
			continue
		}
		args = args.Append(udf.StringArg, v)
	}
	return args, nil
}
