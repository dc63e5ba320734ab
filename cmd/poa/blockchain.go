package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
)

// wrapper over rpcNeo providing blockchain services needed for PoA commands.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	inv *invoker.Invoker
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within the
// given timeout.
func newRemoteBlockChain(ctx context.Context, endpoint string, timeout time.Duration) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    timeout,
		RequestTimeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{
		rpc: c,
		inv: invoker.New(c, nil),
	}, nil
}

// remoteBlockchainFromFlags is newRemoteBlockChain configured by the root
// command flags.
func remoteBlockchainFromFlags(cmd *cobra.Command) (*remoteBlockchain, error) {
	endpoint, err := cmd.Flags().GetString(rpcEndpointFlag)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		return nil, errors.New("missing Neo RPC endpoint")
	}

	timeout, err := cmd.Flags().GetDuration(rpcTimeoutFlag)
	if err != nil {
		return nil, err
	}

	return newRemoteBlockChain(cmd.Context(), endpoint, timeout)
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// iterateContractStorage iterates over storage items of the Neo smart
// contract referenced by given address and having given key prefix, and
// passes them into f. iterateContractStorage breaks on any f's error and
// returns it.
func (x *remoteBlockchain) iterateContractStorage(contract util.Uint160, prefix []byte, f func(key, value []byte) error) error {
	nLatestBlock, err := x.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	stateRoot, err := x.rpc.GetStateRootByHeight(nLatestBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", nLatestBlock-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, contract, prefix, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
