package registry_test

import (
	"context"
	"fmt"
	"log"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/poa-contract/rpc/registry"
)

// Resolve addresses of the contracts PoA Token depends on by their registry
// names.
func ExampleContractReader_ResolveContracts() {
	const rpcEndpoint = "http://localhost:30333"

	c, err := rpcclient.New(context.Background(), rpcEndpoint, rpcclient.Options{})
	if err != nil {
		log.Fatal(err)
	}

	err = c.Init()
	if err != nil {
		log.Fatal(err)
	}

	registryAddress, err := util.Uint160DecodeStringLE("a5b1c7e0fd6e2b1b36b1dc4c0a8e7d3f5c9e2f01")
	if err != nil {
		log.Fatal(err)
	}

	r := registry.NewReader(invoker.New(c, nil), registryAddress)

	cs, err := r.ResolveContracts()
	if err != nil {
		log.Fatal(err)
	}

	for name, addr := range cs.Names() {
		fmt.Printf("%s: %s\n", name, addr.StringLE())
	}
}
