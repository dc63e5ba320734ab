package poatoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

// Symbol is a NEP-17 standard method that returns asset token symbol.
func Symbol() string {
	return getConfig(storage.GetReadOnlyContext()).Symbol
}

// Decimals is a NEP-17 standard method that returns token precision.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the number of tokens
// minted and not burnt.
func TotalSupply() int {
	return common.GetInt(storage.GetReadOnlyContext(), supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns token balance of the
// account.
func BalanceOf(account interop.Hash160) int {
	return balanceOf(storage.GetReadOnlyContext(), account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one account
// to another. It can be invoked only by the account owner. Payouts accrued
// before the transfer stay with the sender.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	checkTransferable(ctx, to, amount)

	if !runtime.CheckWitness(from) {
		return false
	}
	return transfer(ctx, from, to, amount, data)
}

// Approve allows spender to transfer up to amount tokens of the owner. It
// replaces the previous allowance. It can be invoked only by the owner.
//
// It produces Approval notification.
func Approve(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	checkTransferable(ctx, spender, amount)
	common.CheckWitness(owner)

	common.PutInt(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
	return true
}

// Allowance returns the number of owner's tokens spender is allowed to
// transfer.
func Allowance(owner, spender interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), allowanceKey(owner, spender))
}

// TransferFrom transfers tokens on behalf of their owner decreasing spender's
// allowance by the amount. It can be invoked only by spender.
//
// It produces Transfer notification.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	checkTransferable(ctx, to, amount)

	if !runtime.CheckWitness(spender) {
		return false
	}

	key := allowanceKey(from, spender)
	allowance := common.GetInt(ctx, key)
	if allowance < amount || balanceOf(ctx, from) < amount {
		return false
	}
	common.PutInt(ctx, key, allowance-amount)
	return transfer(ctx, from, to, amount, data)
}

func checkTransferable(ctx storage.Context, to interop.Hash160, amount int) {
	mustBeInitialized(ctx)
	if getStage(ctx) != stageActive {
		panic(common.ErrInvalidStage)
	}
	if common.GetFlag(ctx, pausedKey) {
		panic(common.ErrInvalidStage + ": paused")
	}
	if len(to) != interop.Hash160Len {
		panic(common.ErrInvalidParameter + ": address")
	}
	if amount < 0 {
		panic(common.ErrInvalidParameter + ": negative amount")
	}
}

func transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if common.GetFlag(ctx, whitelistTransfersKey) {
		cfg := getConfig(ctx)
		if !isWhitelisted(cfg, from) || !isWhitelisted(cfg, to) {
			panic(common.ErrNotWhitelisted)
		}
	}

	balance := balanceOf(ctx, from)
	if balance < amount {
		return false
	}

	if amount > 0 && !from.Equals(to) {
		reconcile(ctx, from)
		reconcile(ctx, to)
		putBalance(ctx, from, balance-amount)
		putBalance(ctx, to, balanceOf(ctx, to)+amount)
	}

	postTransfer(from, to, amount, data)
	return true
}

// postTransfer sends Transfer notification to the network and calls
// onNEP17Payment method of the receiving contract.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	notifyTransfer(from, to, amount)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func mint(ctx storage.Context, to interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	reconcile(ctx, to)
	putBalance(ctx, to, balanceOf(ctx, to)+amount)
	common.PutInt(ctx, supplyKey, common.GetInt(ctx, supplyKey)+amount)
	notifyTransfer(nil, to, amount)
}

func burn(ctx storage.Context, from interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	reconcile(ctx, from)
	putBalance(ctx, from, balanceOf(ctx, from)-amount)
	common.PutInt(ctx, supplyKey, common.GetInt(ctx, supplyKey)-amount)
	notifyTransfer(from, nil, amount)
}

// notifyTransfer emits Transfer notification, nil from or to stand for mint
// and burn respectively.
func notifyTransfer(from, to interop.Hash160, amount int) {
	runtime.Notify("Transfer", from, to, amount)
}

func balanceOf(ctx storage.Context, addr interop.Hash160) int {
	return common.GetInt(ctx, addrKey(balancePrefix, addr))
}

func putBalance(ctx storage.Context, addr interop.Hash160, amount int) {
	common.PutInt(ctx, addrKey(balancePrefix, addr), amount)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(addrKey(allowancePrefix, owner), spender...)
}
