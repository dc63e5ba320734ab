package poatoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

// Activate makes the asset operational after the custodian has verified it
// off-chain. Raised GAS minus the fee becomes claimable by the broker, the
// fee is sent to the fee manager. It can be invoked only by custodian during
// Pending.
//
// It produces StageChanged, ProofOfCustodyUpdated, Unpause and Activated
// notifications.
func Activate(proofOfCustody string) {
	ctx := storage.GetContext()
	admit(ctx, activateRule)
	checkProofOfCustody(proofOfCustody)

	common.Lock(ctx)

	cfg := getConfig(ctx)
	balance := gas.BalanceOf(runtime.GetExecutingScriptHash())
	fee := common.CalculateFee(balance)

	setStage(ctx, stageActive)
	setProofOfCustody(ctx, proofOfCustody)
	setPaused(ctx, false)

	addUnclaimed(ctx, cfg.Broker, balance-fee)
	runtime.Notify("Activated", cfg.Broker, balance-fee, fee)

	payFee(cfg, fee)

	common.Unlock(ctx)
}

// distribute spreads the payout among token holders proportionally to their
// balances. Rounding remainder is kept and added to the next payout.
//
// It produces Payout notification.
func distribute(ctx storage.Context, from interop.Hash160, amount int) {
	admit(ctx, distributeRule)
	if !from.Equals(getCustodian(ctx)) {
		panic(common.ErrUnauthorized + ": only custodian can pay out")
	}

	common.Lock(ctx)

	var (
		cfg           = getConfig(ctx)
		supply        = common.GetInt(ctx, supplyKey)
		fee           = common.CalculateFee(amount)
		distributable = amount - fee + common.GetInt(ctx, dustKey)
		increment     = distributable * payoutScale / supply
	)

	if increment == 0 {
		panic(common.ErrInsufficientFunds + ": payout is too low")
	}

	accounted := common.CeilDiv(increment*supply, payoutScale)
	common.PutInt(ctx, dustKey, distributable-accounted)
	common.PutInt(ctx, perTokenKey, common.GetInt(ctx, perTokenKey)+increment)
	runtime.Notify("Payout", amount, fee, increment)

	payFee(cfg, fee)

	common.Unlock(ctx)
}

// Claim sends all GAS accrued by the holder. Zero claim is a no-op. It can be
// invoked only by the holder.
//
// It produces Claim notification.
func Claim(holder interop.Hash160) int {
	ctx := storage.GetContext()
	admit(ctx, claimRule)
	common.CheckWitness(holder)

	common.Lock(ctx)

	reconcile(ctx, holder)

	key := addrKey(unclaimedPrefix, holder)
	amount := common.GetInt(ctx, key)
	if amount == 0 {
		common.Unlock(ctx)
		return 0
	}

	common.PutInt(ctx, key, 0)
	runtime.Notify("Claim", holder, amount)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), holder, amount, nil) {
		panic(common.ErrInsufficientFunds + ": can't transfer GAS")
	}

	common.Unlock(ctx)
	return amount
}

// UpdateProofOfCustody replaces custody proof of the active asset. It can be
// invoked only by custodian.
//
// It produces ProofOfCustodyUpdated notification.
func UpdateProofOfCustody(proofOfCustody string) {
	ctx := storage.GetContext()
	admit(ctx, proofRule)
	checkProofOfCustody(proofOfCustody)
	setProofOfCustody(ctx, proofOfCustody)
}

// CurrentPayout returns GAS the holder can claim. If includeUnclaimed is false
// only payouts made since the last reconciliation of the holder are counted.
func CurrentPayout(holder interop.Hash160, includeUnclaimed bool) int {
	ctx := storage.GetReadOnlyContext()

	payout := pendingPayout(ctx, holder)
	if includeUnclaimed {
		payout += common.GetInt(ctx, addrKey(unclaimedPrefix, holder))
	}
	return payout
}

// TotalPerTokenPayout returns accumulated payout per token scaled by 1e18.
func TotalPerTokenPayout() int {
	return common.GetInt(storage.GetReadOnlyContext(), perTokenKey)
}

// PayoutDust returns the rounding remainder to be added to the next payout.
func PayoutDust() int {
	return common.GetInt(storage.GetReadOnlyContext(), dustKey)
}

func setProofOfCustody(ctx storage.Context, proof string) {
	storage.Put(ctx, proofKey, proof)
	runtime.Notify("ProofOfCustodyUpdated", proof)
}

func payFee(cfg Config, fee int) {
	if fee == 0 {
		return
	}
	feeManager := common.ResolveContractHash(cfg.Registry, common.FeeManagerName)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), feeManager, fee, nil) {
		panic(common.ErrInsufficientFunds + ": can't pay fee")
	}
}

// pendingPayout returns the payout accrued by the holder's balance since its
// last reconciliation.
func pendingPayout(ctx storage.Context, holder interop.Hash160) int {
	delta := common.GetInt(ctx, perTokenKey) - common.GetInt(ctx, addrKey(baselinePrefix, holder))
	if delta == 0 {
		return 0
	}
	return balanceOf(ctx, holder) * delta / payoutScale
}

// reconcile moves accrued payout of the holder to its unclaimed balance. It
// must be called before any change of the holder's token balance.
func reconcile(ctx storage.Context, holder interop.Hash160) {
	perToken := common.GetInt(ctx, perTokenKey)
	baselineKey := addrKey(baselinePrefix, holder)
	if common.GetInt(ctx, baselineKey) == perToken {
		return
	}

	addUnclaimed(ctx, holder, pendingPayout(ctx, holder))
	common.PutInt(ctx, baselineKey, perToken)
}

// addUnclaimed credits the holder with GAS that can be claimed. Baseline must
// be reconciled beforehand.
func addUnclaimed(ctx storage.Context, holder interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	key := addrKey(unclaimedPrefix, holder)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)
}
