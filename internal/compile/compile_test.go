package compile

import (
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/poa-contract/contracts"
	"github.com/stretchr/testify/require"
)

const contractsRoot = "../../contracts"

func TestContract(t *testing.T) {
	c, err := Contract(filepath.Join(contractsRoot, contracts.RegistryDir))
	require.NoError(t, err)
	require.Equal(t, "PoA Registry", c.Manifest.Name)
	require.NotEmpty(t, c.NEF.Script)
	require.NotNil(t, c.Manifest.ABI.GetMethod("getContractAddress", 1))
	require.NotNil(t, c.Manifest.ABI.GetEvent("ContractAddressUpdated"))

	_, err = Contract(filepath.Join(contractsRoot, "missing"))
	require.Error(t, err)
}

func TestAll(t *testing.T) {
	cs, err := All(contractsRoot)
	require.NoError(t, err)

	names := make([]string, 0, len(cs))
	for i := range cs {
		names = append(names, cs[i].Manifest.Name)
	}
	require.Equal(t, []string{
		"PoA Registry",
		"PoA Whitelist",
		"PoA ExchangeRates",
		"PoA FeeManager",
		"PoA Token",
	}, names)
	require.Contains(t, cs[len(cs)-1].Manifest.SupportedStandards, "NEP-17")
}

func TestTokenConversionMethods(t *testing.T) {
	c, err := Contract(filepath.Join(contractsRoot, contracts.PoATokenDir))
	require.NoError(t, err)

	for name, params := range map[string]int{
		"gasToTokens":       1,
		"gasToFiatCents":    1,
		"fiatCentsToGAS":    1,
		"fiatCentsToTokens": 1,
		"fundingGoalInGAS":  0,
	} {
		m := c.Manifest.ABI.GetMethod(name, params)
		require.NotNil(t, m, name)
		require.True(t, m.Safe, name)
	}
}

func TestFeeManagerEvents(t *testing.T) {
	c, err := Contract(filepath.Join(contractsRoot, contracts.FeeManagerDir))
	require.NoError(t, err)
	require.NotNil(t, c.Manifest.ABI.GetEvent("FeePaid"))
	require.NotNil(t, c.Manifest.ABI.GetEvent("Withdrawn"))
}
