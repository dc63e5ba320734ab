package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const ownerKey = "owner"

// SetOwner stores contract owner. It's expected to be called from _deploy.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	if !IsValidAddress(owner) {
		panic(ErrInvalidParameter + ": owner address")
	}
	storage.Put(ctx, ownerKey, owner)
}

// Owner returns contract owner set on deployment.
func Owner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

// CheckOwnerWitness checks witness of the contract owner.
// It panics with ErrUnauthorized message on fail.
func CheckOwnerWitness(ctx storage.Context) {
	CheckWitness(Owner(ctx))
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrUnauthorized message on fail.
func CheckWitness(caller interop.Hash160) {
	if !runtime.CheckWitness(caller) {
		panic(ErrUnauthorized)
	}
}
