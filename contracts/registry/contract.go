package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/poa-contract/common"
)

const (
	addressPrefix = 'a'

	maxNameLength = 64
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	common.SetOwner(storage.GetContext(), args[0].(interop.Hash160))

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// UpdateContractAddress binds name to the contract hash replacing the
// previous value if any. It can be invoked only by contract owner.
//
// It produces ContractAddressUpdated notification.
func UpdateContractAddress(name string, hash interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if len(name) == 0 || len(name) > maxNameLength {
		panic(common.ErrInvalidParameter + ": contract name")
	}
	if !common.IsValidAddress(hash) {
		panic(common.ErrInvalidParameter + ": contract hash")
	}

	storage.Put(ctx, append([]byte{addressPrefix}, name...), hash)
	runtime.Notify("ContractAddressUpdated", name, hash)
}

// GetContractAddress returns the contract hash bound to name or nil if there
// is no such binding.
func GetContractAddress(name string) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	h := storage.Get(ctx, append([]byte{addressPrefix}, name...))
	if h == nil {
		return nil
	}
	return h.(interop.Hash160)
}

// ListContracts returns iterator over name-hash pairs of all registered
// contracts.
func ListContracts() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{addressPrefix}, storage.RemovePrefix)
}
