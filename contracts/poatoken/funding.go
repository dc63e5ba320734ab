package poatoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Transfers with "payout" data are distributed among token holders, any other
// transfer is a contribution to the funding round.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic(common.ErrInvalidParameter + ": only GAS can be accepted")
	}
	if amount <= 0 {
		panic(common.ErrInvalidParameter + ": amount must be positive")
	}

	ctx := storage.GetContext()
	if data != nil && data.(string) == payoutData {
		distribute(ctx, from, amount)
		return
	}
	contribute(ctx, from, amount)
}

// contribute accounts GAS paid by a whitelisted investor. Only the part up to
// the funding goal is accepted, the rest is sent back.
//
// It produces Buy, Transfer and Refund notifications.
func contribute(ctx storage.Context, investor interop.Hash160, amount int) {
	admit(ctx, contributeRule)

	cfg := getConfig(ctx)
	if !isWhitelisted(cfg, investor) {
		panic(common.ErrNotWhitelisted)
	}
	if common.GetInt(ctx, addrKey(fiatInvestmentPrefix, investor)) > 0 {
		panic(common.ErrUnauthorized + ": fiat investors can't buy with GAS")
	}

	common.Lock(ctx)

	rate := getRate(cfg)
	funded := common.GetInt(ctx, fundedGASKey)
	remaining := fundingGoalInGAS(ctx, cfg, rate) - funded
	if remaining <= 0 {
		// The rate has grown enough for already raised GAS to cover the goal.
		setStage(ctx, stagePending)
		refund(investor, amount)
		common.Unlock(ctx)
		return
	}

	accepted := amount
	if accepted > remaining {
		accepted = remaining
	}

	tokens := gasToTokens(cfg, rate, accepted)
	mint(ctx, investor, tokens)

	key := addrKey(investmentPrefix, investor)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+accepted)
	common.PutInt(ctx, fundedGASKey, funded+accepted)
	runtime.Notify("Buy", investor, accepted, tokens)

	if accepted == remaining {
		setStage(ctx, stagePending)
	}
	if accepted < amount {
		refund(investor, amount-accepted)
	}

	common.Unlock(ctx)
}

func refund(to interop.Hash160, amount int) {
	runtime.Notify("Refund", to, amount)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil) {
		panic(common.ErrInsufficientFunds + ": refund failed")
	}
}

// BuyFiat accounts fiat contribution made off-chain by the investor. It can be
// invoked only by custodian during PreSale. Fiat contributions can't exceed
// the funding goal.
//
// It produces FiatBuy and Transfer notifications.
func BuyFiat(investor interop.Hash160, amountInCents int) {
	ctx := storage.GetContext()
	admit(ctx, buyFiatRule)

	if !common.IsValidAddress(investor) {
		panic(common.ErrInvalidParameter + ": investor address")
	}
	if amountInCents < minFiatContribution {
		panic(common.ErrInsufficientFunds + ": contribution is below minimum")
	}

	cfg := getConfig(ctx)
	funded := common.GetInt(ctx, fundedCentsKey)
	if funded+amountInCents > cfg.FundingGoalInCents {
		panic(common.ErrInvalidParameter + ": contribution exceeds funding goal")
	}

	tokens := fiatCentsToTokens(cfg, amountInCents)
	mint(ctx, investor, tokens)

	key := addrKey(fiatInvestmentPrefix, investor)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amountInCents)
	common.PutInt(ctx, fundedCentsKey, funded+amountInCents)
	runtime.Notify("FiatBuy", investor, amountInCents, tokens)
}

// Reclaim returns GAS contributed by the holder of a failed or cancelled round
// and burns all holder's tokens. Fiat contributions are refunded off-chain,
// their amount is reported in the notification.
//
// It produces Reclaim and Transfer notifications.
func Reclaim(holder interop.Hash160) {
	ctx := storage.GetContext()
	admit(ctx, reclaimRule)
	common.CheckWitness(holder)

	var (
		investmentKey = addrKey(investmentPrefix, holder)
		fiatKey       = addrKey(fiatInvestmentPrefix, holder)
		amount        = common.GetInt(ctx, investmentKey)
		cents         = common.GetInt(ctx, fiatKey)
		tokens        = balanceOf(ctx, holder)
	)

	if amount == 0 && tokens == 0 {
		panic(common.ErrInsufficientFunds + ": nothing to reclaim")
	}

	common.Lock(ctx)

	common.PutInt(ctx, investmentKey, 0)
	common.PutInt(ctx, fiatKey, 0)
	common.PutInt(ctx, fundedGASKey, common.GetInt(ctx, fundedGASKey)-amount)
	common.PutInt(ctx, fundedCentsKey, common.GetInt(ctx, fundedCentsKey)-cents)
	burn(ctx, holder, tokens)

	runtime.Notify("Reclaim", holder, amount, cents)
	if amount > 0 && !gas.Transfer(runtime.GetExecutingScriptHash(), holder, amount, nil) {
		panic(common.ErrInsufficientFunds + ": can't transfer GAS")
	}

	common.Unlock(ctx)
}

// FundingGoalInGAS returns the amount of GAS needed to reach funding goal at
// the current rate, fiat contributions excluded.
func FundingGoalInGAS() int {
	ctx := storage.GetReadOnlyContext()
	cfg := getConfig(ctx)
	return fundingGoalInGAS(ctx, cfg, getRate(cfg))
}

// FundedAmountInGAS returns the amount of GAS raised.
func FundedAmountInGAS() int {
	return common.GetInt(storage.GetReadOnlyContext(), fundedGASKey)
}

// FundedAmountInCentsDuringFiatFunding returns the amount of fiat cents raised
// during PreSale.
func FundedAmountInCentsDuringFiatFunding() int {
	return common.GetInt(storage.GetReadOnlyContext(), fundedCentsKey)
}

// InvestmentAmountPerUserInGAS returns the amount of GAS contributed by the
// investor.
func InvestmentAmountPerUserInGAS(investor interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), addrKey(investmentPrefix, investor))
}

// FiatInvestmentPerUserInCents returns the amount of fiat cents contributed by
// the investor.
func FiatInvestmentPerUserInCents(investor interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), addrKey(fiatInvestmentPrefix, investor))
}

// GasToFiatCents converts GAS amount to fiat cents at the current rate.
func GasToFiatCents(amount int) int {
	cfg := getConfig(storage.GetReadOnlyContext())
	return amount * getRate(cfg) / gasUnit
}

// FiatCentsToGAS converts fiat cents to GAS at the current rate.
func FiatCentsToGAS(cents int) int {
	cfg := getConfig(storage.GetReadOnlyContext())
	return fiatCentsToGAS(getRate(cfg), cents)
}

// GasToTokens returns the number of tokens minted for the GAS amount at the
// current rate.
func GasToTokens(amount int) int {
	cfg := getConfig(storage.GetReadOnlyContext())
	return gasToTokens(cfg, getRate(cfg), amount)
}

// FiatCentsToTokens returns the number of tokens minted for fiat contribution.
func FiatCentsToTokens(cents int) int {
	return fiatCentsToTokens(getConfig(storage.GetReadOnlyContext()), cents)
}

func fundingGoalInGAS(ctx storage.Context, cfg Config, rate int) int {
	return fiatCentsToGAS(rate, cfg.FundingGoalInCents-common.GetInt(ctx, fundedCentsKey))
}

func fiatCentsToGAS(rate, cents int) int {
	return cents * gasUnit / rate
}

func gasToTokens(cfg Config, rate, amount int) int {
	return amount * rate * cfg.TargetSupply / (gasUnit * cfg.FundingGoalInCents)
}

func fiatCentsToTokens(cfg Config, cents int) int {
	return cents * cfg.TargetSupply / cfg.FundingGoalInCents
}

func addrKey(prefix byte, addr interop.Hash160) []byte {
	return append([]byte{prefix}, addr...)
}
