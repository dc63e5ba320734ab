package registry

// A set of contract names PoA Token resolves via the registry.
const (
	NameFeeManager    = "FeeManager"
	NameExchangeRates = "ExchangeRates"
	NameWhitelist     = "Whitelist"
)
