// Package registry contains RPC wrappers for PoA Registry contract.
package registry

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// DefaultIteratorLimit is the number of registry records fetched by
// ListContracts.
const DefaultIteratorLimit = 100

// ErrUnknownContract is returned when the registry has no record for the
// requested name.
var ErrUnknownContract = errors.New("unknown contract name")

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// Record is a single name binding stored in the registry.
type Record struct {
	Name string
	Hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// GetContractAddress invokes `getContractAddress` method of contract. It
// returns ErrUnknownContract if nothing is bound to name.
func (c *ContractReader) GetContractAddress(name string) (util.Uint160, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "getContractAddress", name))
	if err != nil {
		return util.Uint160{}, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, fmt.Errorf("%w: %s", ErrUnknownContract, name)
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

// ListContracts returns up to DefaultIteratorLimit records of the registry.
func (c *ContractReader) ListContracts() ([]Record, error) {
	items, err := unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listContracts", DefaultIteratorLimit))
	if err != nil {
		return nil, err
	}

	res := make([]Record, 0, len(items))
	for i := range items {
		kv, ok := items[i].Value().([]stackitem.Item)
		if !ok || len(kv) != 2 {
			return nil, fmt.Errorf("record #%d: not a key-value pair", i)
		}
		name, err := kv[0].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("record #%d: name: %w", i, err)
		}
		raw, err := kv[1].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("record #%d: hash: %w", i, err)
		}
		h, err := util.Uint160DecodeBytesBE(raw)
		if err != nil {
			return nil, fmt.Errorf("record #%d: hash: %w", i, err)
		}
		res = append(res, Record{Name: string(name), Hash: h})
	}
	return res, nil
}

// UpdateContractAddress creates a transaction invoking `updateContractAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateContractAddress(name string, hash util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateContractAddress", name, hash)
}

// UpdateContractAddressTransaction creates a transaction invoking `updateContractAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateContractAddressTransaction(name string, hash util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateContractAddress", name, hash)
}

// UpdateContractAddressUnsigned creates a transaction invoking `updateContractAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
func (c *Contract) UpdateContractAddressUnsigned(name string, hash util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateContractAddress", nil, name, hash)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}
