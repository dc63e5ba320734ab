package whitelist

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

const listPrefix = 'w'

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	common.SetOwner(storage.GetContext(), args[0].(interop.Hash160))

	runtime.Log("whitelist contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("whitelist contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// AddAddress puts addr to the whitelist. It can be invoked only by contract
// owner. Adding already listed address is a no-op.
func AddAddress(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if !common.IsValidAddress(addr) {
		panic(common.ErrInvalidParameter + ": address")
	}

	key := append([]byte{listPrefix}, addr...)
	if common.GetFlag(ctx, key) {
		return
	}
	common.SetFlag(ctx, key, true)
	runtime.Notify("Whitelisted", addr)
}

// RemoveAddress removes addr from the whitelist. It can be invoked only by
// contract owner. Removing unknown address is a no-op.
func RemoveAddress(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	key := append([]byte{listPrefix}, addr...)
	if !common.GetFlag(ctx, key) {
		return
	}
	common.SetFlag(ctx, key, false)
	runtime.Notify("Delisted", addr)
}

// IsWhitelisted checks whether addr is in the whitelist.
func IsWhitelisted(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return common.GetFlag(ctx, append([]byte{listPrefix}, addr...))
}
