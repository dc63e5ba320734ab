package feemanager

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

const (
	collectedPrefix = 'c'

	totalCollectedKey = "total"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	common.SetOwner(storage.GetContext(), args[0].(interop.Hash160))

	runtime.Log("fee manager contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("fee manager contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Every received GAS transfer is accounted as a fee paid by the sender.
//
// It produces FeePaid notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic(common.ErrInvalidParameter + ": only GAS can be accepted as a fee")
	}
	if amount <= 0 {
		panic(common.ErrInvalidParameter + ": amount must be positive")
	}

	ctx := storage.GetContext()
	key := append([]byte{collectedPrefix}, from...)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)
	common.PutInt(ctx, totalCollectedKey, common.GetInt(ctx, totalCollectedKey)+amount)

	runtime.Notify("FeePaid", from, amount)
}

// Collected returns the amount of fees paid by the address.
func Collected(payer interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{collectedPrefix}, payer...))
}

// TotalCollected returns the amount of fees received by the contract since
// deployment.
func TotalCollected() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalCollectedKey)
}

// Withdraw transfers collected GAS to the given address. It can be invoked
// only by contract owner.
//
// It produces Withdrawn notification.
func Withdraw(to interop.Hash160, amount int) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(ctx)

	if !common.IsValidAddress(to) || amount <= 0 {
		panic(common.ErrInvalidParameter + ": withdraw")
	}
	if !gas.Transfer(runtime.GetExecutingScriptHash(), to, amount, nil) {
		panic(common.ErrInsufficientFunds + ": can't transfer GAS")
	}

	runtime.Notify("Withdrawn", to, amount)
}
