package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

// Well-known names of the collaborator contracts in the registry.
const (
	FeeManagerName    = "FeeManager"
	ExchangeRatesName = "ExchangeRates"
	WhitelistName     = "Whitelist"
)

// ResolveContractHash resolves contract hash by its well-known name using
// registry contract. Addresses are resolved on every call and never cached,
// so the registry owner can replace a collaborator at any time.
func ResolveContractHash(registry interop.Hash160, name string) interop.Hash160 {
	h := contract.Call(registry, "getContractAddress", contract.ReadOnly, name).(interop.Hash160)
	if len(h) != interop.Hash160Len {
		panic("registry does not know " + name + " address")
	}
	return h
}
