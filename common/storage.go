package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns integer stored by the key or 0 if there is none.
func GetInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v == nil {
		return 0
	}
	return v.(int)
}

// PutInt stores integer by the key removing the item for zero values.
func PutInt(ctx storage.Context, key any, value int) {
	if value == 0 {
		storage.Delete(ctx, key)
		return
	}
	storage.Put(ctx, key, value)
}

// GetFlag returns true if the flag under the key is set.
func GetFlag(ctx storage.Context, key any) bool {
	return storage.Get(ctx, key) != nil
}

// SetFlag sets or clears the flag under the key.
func SetFlag(ctx storage.Context, key any, value bool) {
	if value {
		storage.Put(ctx, key, 1)
	} else {
		storage.Delete(ctx, key)
	}
}
