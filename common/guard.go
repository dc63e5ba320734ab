package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

const busyKey = "busy"

// Lock marks the contract as busy for the rest of the invocation. Nested
// calls trying to Lock again fail with ErrReentrantCall. Storage changes are
// reverted on abort, so the flag never outlives a failed invocation.
func Lock(ctx storage.Context) {
	if GetFlag(ctx, busyKey) {
		panic(ErrReentrantCall)
	}
	SetFlag(ctx, busyKey, true)
}

// Unlock clears the busy flag set by Lock.
func Unlock(ctx storage.Context) {
	SetFlag(ctx, busyKey, false)
}
