package exchangerates

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

const (
	ratePrefix = 'r'

	ratesActiveKey = "active"

	maxCurrencyLength = 8
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
	common.SetFlag(ctx, ratesActiveKey, true)

	runtime.Log("exchange rates contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("exchange rates contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// SetRate stores the price of one GAS in cents of the given fiat currency.
// Currency code consists of upper-case Latin letters. It can be invoked only by contract owner
// while rates are active.
//
// It produces RateUpdated notification.
func SetRate(currency string, rate int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if !common.GetFlag(ctx, ratesActiveKey) {
		panic(common.ErrInvalidStage + ": rates are not active")
	}
	if rate < 0 {
		panic(common.ErrInvalidParameter + ": negative rate")
	}

	checkCurrency(currency)
	common.PutInt(ctx, append([]byte{ratePrefix}, currency...), rate)
	runtime.Notify("RateUpdated", currency, rate)
}

// GetRate returns the last rate set for the currency or 0 if there is none.
func GetRate(currency string) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{ratePrefix}, currency...))
}

// GetRateReadable is like GetRate but panics if the rate is not set, so that
// callers never convert amounts using zero rate.
func GetRateReadable(currency string) int {
	rate := GetRate(currency)
	if rate == 0 {
		panic(common.ErrInvalidParameter + ": rate for " + currency + " is not set")
	}
	return rate
}

// ToggleRatesActive enables or disables rate updates and returns the new
// state. It can be invoked only by contract owner.
func ToggleRatesActive() bool {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	active := !common.GetFlag(ctx, ratesActiveKey)
	common.SetFlag(ctx, ratesActiveKey, active)
	return active
}

// RatesActive returns true if rates can be updated.
func RatesActive() bool {
	return common.GetFlag(storage.GetReadOnlyContext(), ratesActiveKey)
}

func checkCurrency(s string) {
	if len(s) == 0 || len(s) > maxCurrencyLength {
		panic(common.ErrInvalidParameter + ": currency code")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			panic(common.ErrInvalidParameter + ": currency code")
		}
	}
}
