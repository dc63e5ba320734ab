package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/poa-contract/common"
	"github.com/spf13/cobra"
)

const (
	rpcEndpointFlag = "rpc"
	rpcTimeoutFlag  = "timeout"
)

var rootCmd = &cobra.Command{
	Use:           "poa",
	Short:         "PoA Token contracts management",
	Long:          `Deploys PoA contracts to the Neo network and inspects the state of the tokenized asset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version of the contracts",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("%d.%d.%d\n",
			common.Version/1_000_000, common.Version/1_000%1_000, common.Version%1_000)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP(rpcEndpointFlag, "r", "", "Network address of the Neo RPC server")
	rootCmd.PersistentFlags().Duration(rpcTimeoutFlag, 15*time.Second, "Timeout of the RPC connection and requests")

	rootCmd.AddCommand(versionCmd, deployCmd, inspectCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
