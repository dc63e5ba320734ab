package poatoken

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// BalancePrefix is the storage key prefix of token balances in the contract
// storage. Balance keys are the prefix followed by the holder address.
const BalancePrefix = 0x10

var errInvalidBalanceKey = errors.New("invalid balance key")

// ParseBalanceItem decodes holder and its balance from the contract storage
// item. Key may be given with or without BalancePrefix.
func ParseBalanceItem(key, value []byte) (util.Uint160, *big.Int, error) {
	switch {
	case len(key) == util.Uint160Size+1 && key[0] == BalancePrefix:
		key = key[1:]
	case len(key) == util.Uint160Size:
	default:
		return util.Uint160{}, nil, fmt.Errorf("%w: length %d", errInvalidBalanceKey, len(key))
	}

	holder, err := util.Uint160DecodeBytesBE(key)
	if err != nil {
		return util.Uint160{}, nil, fmt.Errorf("%w: %w", errInvalidBalanceKey, err)
	}

	return holder, bigint.FromBytes(value), nil
}
