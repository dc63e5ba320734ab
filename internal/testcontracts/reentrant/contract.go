package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Payment is the last token payment received by the contract.
type Payment struct {
	From   interop.Hash160
	Amount int
	Data   any
}

const (
	targetKey  = "target"
	paymentKey = "payment"
)

// SetTarget remembers the token contract to call back into when GAS arrives.
func SetTarget(token interop.Hash160) {
	storage.Put(storage.GetContext(), targetKey, token)
}

// Claim claims payout of the contract from the target token.
func Claim() int {
	return contract.Call(target(), "claim", contract.All, runtime.GetExecutingScriptHash()).(int)
}

// OnNEP17Payment records token payments and tries to claim once more when GAS
// comes from the target token.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	if runtime.GetCallingScriptHash().Equals(gas.Hash) {
		if from.Equals(target()) {
			Claim()
		}
		return
	}
	storage.Put(ctx, paymentKey, std.Serialize(Payment{
		From:   from,
		Amount: amount,
		Data:   data,
	}))
}

// LastPayment returns the last non-GAS payment.
func LastPayment() Payment {
	val := storage.Get(storage.GetReadOnlyContext(), paymentKey)
	if val == nil {
		return Payment{}
	}
	return std.Deserialize(val.([]byte)).(Payment)
}

func target() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), targetKey).(interop.Hash160)
}
