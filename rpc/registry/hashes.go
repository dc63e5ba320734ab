package registry

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Contracts are hashes of the contracts PoA Token depends on.
type Contracts struct {
	FeeManager    util.Uint160
	ExchangeRates util.Uint160
	Whitelist     util.Uint160
}

// ResolveContracts fetches all PoA Token dependencies from the registry. It
// fails if any of them is missing.
func (c *ContractReader) ResolveContracts() (Contracts, error) {
	var (
		res Contracts
		err error
	)
	for _, x := range []struct {
		name string
		dst  *util.Uint160
	}{
		{NameFeeManager, &res.FeeManager},
		{NameExchangeRates, &res.ExchangeRates},
		{NameWhitelist, &res.Whitelist},
	} {
		*x.dst, err = c.GetContractAddress(x.name)
		if err != nil {
			return Contracts{}, fmt.Errorf("resolve %s: %w", x.name, err)
		}
	}
	return res, nil
}

// Names returns registry names mapped to the corresponding hashes.
func (c Contracts) Names() map[string]util.Uint160 {
	return map[string]util.Uint160{
		NameFeeManager:    c.FeeManager,
		NameExchangeRates: c.ExchangeRates,
		NameWhitelist:     c.Whitelist,
	}
}
