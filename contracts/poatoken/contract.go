package poatoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

// Config is an immutable description of the asset set once by Setup.
type Config struct {
	Name         string
	Symbol       string
	FiatCurrency string
	Broker       interop.Hash160
	Registry     interop.Hash160
	// Number of token units minted when the funding goal is reached exactly.
	TargetSupply       int
	StartTime          int
	FundingTimeout     int
	ActivationTimeout  int
	FundingGoalInCents int
	CreationTime       int
}

const (
	decimals = 18

	// gasUnit is 1 GAS in its smallest units.
	gasUnit = 1_0000_0000
	// payoutScale is the precision of the per-token payout accumulator.
	payoutScale = 1_000_000_000_000_000_000

	minTargetSupply      = 1_000_000_000_000_000_000
	minFiatContribution  = 100
	minFundingTimeout    = 24 * 60 * 60 * 1000
	minActivationTimeout = 7 * minFundingTimeout

	ipfsHashLength = 46

	// payoutData marks GAS transfers distributed to token holders.
	payoutData = "payout"
)

const (
	configKey             = "config"
	custodianKey          = "custodian"
	stageKey              = "stage"
	pausedKey             = "paused"
	whitelistTransfersKey = "whitelistTransfers"
	proofKey              = "proof"
	supplyKey             = "supply"
	fundedGASKey          = "fundedGAS"
	fundedCentsKey        = "fundedCents"
	perTokenKey           = "perToken"
	dustKey               = "dust"

	balancePrefix        = 0x10
	allowancePrefix      = 0x11
	investmentPrefix     = 0x12
	fiatInvestmentPrefix = 0x13
	baselinePrefix       = 0x14
	unclaimedPrefix      = 0x15
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	ctx := storage.GetContext()
	common.SetOwner(ctx, args[0].(interop.Hash160))
	common.SetFlag(ctx, pausedKey, true)

	runtime.Log("poa token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("poa token contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Setup stores asset configuration. It can be invoked only once and only by
// contract owner. Durations and start time are in milliseconds, start time
// must be in the future. Exchange rate for fiatCurrency must be available
// from the rates contract registered in the registry.
//
// It produces StageChanged notification.
func Setup(name, symbol, fiatCurrency string, broker, custodian, registry interop.Hash160,
	targetSupply, startTime, fundingTimeout, activationTimeout, fundingGoalInCents int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if storage.Get(ctx, configKey) != nil {
		panic(common.ErrAlreadyInitialized)
	}

	switch {
	case len(name) == 0:
		panic(common.ErrInvalidParameter + ": empty name")
	case len(symbol) == 0:
		panic(common.ErrInvalidParameter + ": empty symbol")
	case len(fiatCurrency) == 0:
		panic(common.ErrInvalidParameter + ": empty fiat currency")
	case !common.IsValidAddress(broker):
		panic(common.ErrInvalidParameter + ": broker address")
	case !common.IsValidAddress(custodian):
		panic(common.ErrInvalidParameter + ": custodian address")
	case len(registry) != interop.Hash160Len:
		panic(common.ErrInvalidParameter + ": registry address")
	case targetSupply < minTargetSupply:
		panic(common.ErrInvalidParameter + ": total supply is too low")
	case fundingGoalInCents < 1:
		panic(common.ErrInvalidParameter + ": funding goal")
	case fundingTimeout < minFundingTimeout:
		panic(common.ErrInvalidParameter + ": funding timeout is too short")
	case activationTimeout < minActivationTimeout:
		panic(common.ErrInvalidParameter + ": activation timeout is too short")
	}

	now := runtime.GetTime()
	if startTime <= now {
		panic(common.ErrInvalidParameter + ": start time must be in the future")
	}

	cfg := Config{
		Name:               name,
		Symbol:             symbol,
		FiatCurrency:       fiatCurrency,
		Broker:             broker,
		Registry:           registry,
		TargetSupply:       targetSupply,
		StartTime:          startTime,
		FundingTimeout:     fundingTimeout,
		ActivationTimeout:  activationTimeout,
		FundingGoalInCents: fundingGoalInCents,
		CreationTime:       now,
	}

	// Fails if the rate is not available yet.
	getRate(cfg)

	common.SetSerialized(ctx, configKey, cfg)
	storage.Put(ctx, custodianKey, custodian)
	setStage(ctx, stagePreFunding)
}

// ChangeCustodianAddress replaces custodian of the asset. It can be invoked
// only by contract owner before the round is terminated.
//
// It produces CustodianChanged notification.
func ChangeCustodianAddress(custodian interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)
	mustBeInitialized(ctx)

	if getStage(ctx) == stageTerminated {
		panic(common.ErrInvalidStage)
	}

	old := getCustodian(ctx)
	if !common.IsValidAddress(custodian) || custodian.Equals(old) {
		panic(common.ErrInvalidParameter + ": custodian address")
	}

	storage.Put(ctx, custodianKey, custodian)
	runtime.Notify("CustodianChanged", old, custodian)
}

// ToggleWhitelistTransfers switches whitelist checks of token transfers and
// returns the new state. It can be invoked only by contract owner.
//
// It produces WhitelistTransfersToggled notification.
func ToggleWhitelistTransfers() bool {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	enabled := !common.GetFlag(ctx, whitelistTransfersKey)
	common.SetFlag(ctx, whitelistTransfersKey, enabled)
	runtime.Notify("WhitelistTransfersToggled", enabled)
	return enabled
}

// Name returns asset name.
func Name() string {
	return getConfig(storage.GetReadOnlyContext()).Name
}

// Owner returns contract owner.
func Owner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// Broker returns the address credited with funds raised on activation.
func Broker() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).Broker
}

// Custodian returns current asset custodian.
func Custodian() interop.Hash160 {
	return getCustodian(storage.GetReadOnlyContext())
}

// FiatCurrency returns code of the currency funding goal is expressed in.
func FiatCurrency() string {
	return getConfig(storage.GetReadOnlyContext()).FiatCurrency
}

// StartTime returns the time (in milliseconds) the GAS sale can start at.
func StartTime() int {
	return getConfig(storage.GetReadOnlyContext()).StartTime
}

// FundingTimeout returns funding duration in milliseconds counted from the
// start time.
func FundingTimeout() int {
	return getConfig(storage.GetReadOnlyContext()).FundingTimeout
}

// ActivationTimeout returns the time in milliseconds custodian has to
// activate the asset after the funding timeout.
func ActivationTimeout() int {
	return getConfig(storage.GetReadOnlyContext()).ActivationTimeout
}

// FundingGoalInCents returns funding goal in fiat cents.
func FundingGoalInCents() int {
	return getConfig(storage.GetReadOnlyContext()).FundingGoalInCents
}

// TargetSupply returns the number of tokens minted if the funding goal is
// reached at a constant rate.
func TargetSupply() int {
	return getConfig(storage.GetReadOnlyContext()).TargetSupply
}

// CreationTime returns the time of Setup invocation.
func CreationTime() int {
	return getConfig(storage.GetReadOnlyContext()).CreationTime
}

// ProofOfCustody returns IPFS hash of the last custody proof.
func ProofOfCustody() string {
	v := storage.Get(storage.GetReadOnlyContext(), proofKey)
	if v == nil {
		return ""
	}
	return v.(string)
}

// WhitelistTransfers returns true if token transfers require both parties to
// be whitelisted.
func WhitelistTransfers() bool {
	return common.GetFlag(storage.GetReadOnlyContext(), whitelistTransfersKey)
}

// CalculateFee returns the fee charged from the amount.
func CalculateFee(amount int) int {
	return common.CalculateFee(amount)
}

// Percent returns numerator/denominator scaled by 10^precision and rounded
// half up.
func Percent(numerator, denominator, precision int) int {
	return common.Percent(numerator, denominator, precision)
}

func mustBeInitialized(ctx storage.Context) {
	if storage.Get(ctx, configKey) == nil {
		panic(common.ErrInvalidStage + ": not initialized")
	}
}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	if data == nil {
		panic(common.ErrInvalidStage + ": not initialized")
	}
	return std.Deserialize(data.([]byte)).(Config)
}

func getCustodian(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, custodianKey).(interop.Hash160)
}

func getRate(cfg Config) int {
	rates := common.ResolveContractHash(cfg.Registry, common.ExchangeRatesName)
	return contract.Call(rates, "getRateReadable", contract.ReadOnly, cfg.FiatCurrency).(int)
}

func isWhitelisted(cfg Config, addr interop.Hash160) bool {
	wl := common.ResolveContractHash(cfg.Registry, common.WhitelistName)
	return contract.Call(wl, "isWhitelisted", contract.ReadOnly, addr).(bool)
}

// checkProofOfCustody accepts base58-encoded sha2-256 IPFS multihashes only.
func checkProofOfCustody(proof string) {
	if len(proof) != ipfsHashLength || proof[0] != 'Q' || proof[1] != 'm' {
		panic(common.ErrInvalidParameter + ": proof of custody is not an IPFS hash")
	}
	for i := 2; i < len(proof); i++ {
		if !isBase58(proof[i]) {
			panic(common.ErrInvalidParameter + ": proof of custody is not an IPFS hash")
		}
	}
	raw := std.Base58Decode([]byte(proof))
	if len(raw) != 34 || raw[0] != 0x12 || raw[1] != 0x20 {
		panic(common.ErrInvalidParameter + ": proof of custody is not an IPFS hash")
	}
}

func isBase58(c uint8) bool {
	if c >= '1' && c <= '9' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return c != 'I' && c != 'O'
	}
	if c >= 'a' && c <= 'z' {
		return c != 'l'
	}
	return false
}
