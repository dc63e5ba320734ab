package poatoken

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

type eventItem interface {
	FromStackItem(item *stackitem.Array) error
}

// eventsFromApplicationLog collects all events with the given name from
// the provided [result.ApplicationLog].
func eventsFromApplicationLog[T any, PT interface {
	*T
	eventItem
}](log *result.ApplicationLog, name string) ([]*T, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*T
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			event := PT(new(T))
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize %sEvent from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
			res = append(res, (*T)(event))
		}
	}

	return res, nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

// StageChangedEvent represents "StageChanged" event emitted by the contract.
type StageChangedEvent struct {
	Stage Stage
}

// StageChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "StageChanged" name from the provided [result.ApplicationLog].
func StageChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StageChangedEvent, error) {
	return eventsFromApplicationLog[StageChangedEvent](log, "StageChanged")
}

// FromStackItem converts provided [stackitem.Array] to StageChangedEvent or
// returns an error if it's not possible to do to so.
func (e *StageChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}

	s, err := arr[0].TryInteger()
	if err == nil {
		e.Stage = Stage(s.Int64())
	}
	if err != nil {
		return fmt.Errorf("field Stage: %w", err)
	}

	return nil
}

// BuyEvent represents "Buy" event emitted by the contract.
type BuyEvent struct {
	Investor util.Uint160
	Amount *big.Int
	Tokens *big.Int
}

// BuyEventsFromApplicationLog retrieves a set of all emitted events
// with "Buy" name from the provided [result.ApplicationLog].
func BuyEventsFromApplicationLog(log *result.ApplicationLog) ([]*BuyEvent, error) {
	return eventsFromApplicationLog[BuyEvent](log, "Buy")
}

// FromStackItem converts provided [stackitem.Array] to BuyEvent or
// returns an error if it's not possible to do to so.
func (e *BuyEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Investor, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Investor: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Tokens, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Tokens: %w", err)
	}

	return nil
}

// FiatBuyEvent represents "FiatBuy" event emitted by the contract.
type FiatBuyEvent struct {
	Investor util.Uint160
	AmountInCents *big.Int
	Tokens *big.Int
}

// FiatBuyEventsFromApplicationLog retrieves a set of all emitted events
// with "FiatBuy" name from the provided [result.ApplicationLog].
func FiatBuyEventsFromApplicationLog(log *result.ApplicationLog) ([]*FiatBuyEvent, error) {
	return eventsFromApplicationLog[FiatBuyEvent](log, "FiatBuy")
}

// FromStackItem converts provided [stackitem.Array] to FiatBuyEvent or
// returns an error if it's not possible to do to so.
func (e *FiatBuyEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Investor, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Investor: %w", err)
	}

	e.AmountInCents, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field AmountInCents: %w", err)
	}

	e.Tokens, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Tokens: %w", err)
	}

	return nil
}

// RefundEvent represents "Refund" event emitted by the contract.
type RefundEvent struct {
	Investor util.Uint160
	Amount *big.Int
}

// RefundEventsFromApplicationLog retrieves a set of all emitted events
// with "Refund" name from the provided [result.ApplicationLog].
func RefundEventsFromApplicationLog(log *result.ApplicationLog) ([]*RefundEvent, error) {
	return eventsFromApplicationLog[RefundEvent](log, "Refund")
}

// FromStackItem converts provided [stackitem.Array] to RefundEvent or
// returns an error if it's not possible to do to so.
func (e *RefundEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Investor, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Investor: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ActivatedEvent represents "Activated" event emitted by the contract.
type ActivatedEvent struct {
	Broker util.Uint160
	Amount *big.Int
	Fee *big.Int
}

// ActivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "Activated" name from the provided [result.ApplicationLog].
func ActivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ActivatedEvent, error) {
	return eventsFromApplicationLog[ActivatedEvent](log, "Activated")
}

// FromStackItem converts provided [stackitem.Array] to ActivatedEvent or
// returns an error if it's not possible to do to so.
func (e *ActivatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Broker, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Broker: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Fee, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	return nil
}

// PayoutEvent represents "Payout" event emitted by the contract.
type PayoutEvent struct {
	Amount *big.Int
	Fee *big.Int
	PerTokenIncrement *big.Int
}

// PayoutEventsFromApplicationLog retrieves a set of all emitted events
// with "Payout" name from the provided [result.ApplicationLog].
func PayoutEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutEvent, error) {
	return eventsFromApplicationLog[PayoutEvent](log, "Payout")
}

// FromStackItem converts provided [stackitem.Array] to PayoutEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Amount, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Fee, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	e.PerTokenIncrement, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field PerTokenIncrement: %w", err)
	}

	return nil
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Holder util.Uint160
	Amount *big.Int
}

// ClaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Claim" name from the provided [result.ApplicationLog].
func ClaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimEvent, error) {
	return eventsFromApplicationLog[ClaimEvent](log, "Claim")
}

// FromStackItem converts provided [stackitem.Array] to ClaimEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Holder, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Holder: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReclaimEvent represents "Reclaim" event emitted by the contract.
type ReclaimEvent struct {
	Holder util.Uint160
	Amount *big.Int
	AmountInCents *big.Int
}

// ReclaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Reclaim" name from the provided [result.ApplicationLog].
func ReclaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReclaimEvent, error) {
	return eventsFromApplicationLog[ReclaimEvent](log, "Reclaim")
}

// FromStackItem converts provided [stackitem.Array] to ReclaimEvent or
// returns an error if it's not possible to do to so.
func (e *ReclaimEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Holder, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Holder: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.AmountInCents, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field AmountInCents: %w", err)
	}

	return nil
}

// ProofOfCustodyUpdatedEvent represents "ProofOfCustodyUpdated" event emitted by the contract.
type ProofOfCustodyUpdatedEvent struct {
	Proof string
}

// ProofOfCustodyUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProofOfCustodyUpdated" name from the provided [result.ApplicationLog].
func ProofOfCustodyUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProofOfCustodyUpdatedEvent, error) {
	return eventsFromApplicationLog[ProofOfCustodyUpdatedEvent](log, "ProofOfCustodyUpdated")
}

// FromStackItem converts provided [stackitem.Array] to ProofOfCustodyUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ProofOfCustodyUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}

	e.Proof, err = itemToString(arr[0])
	if err != nil {
		return fmt.Errorf("field Proof: %w", err)
	}

	return nil
}

// CustodianChangedEvent represents "CustodianChanged" event emitted by the contract.
type CustodianChangedEvent struct {
	Old util.Uint160
	New util.Uint160
}

// CustodianChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "CustodianChanged" name from the provided [result.ApplicationLog].
func CustodianChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CustodianChangedEvent, error) {
	return eventsFromApplicationLog[CustodianChangedEvent](log, "CustodianChanged")
}

// FromStackItem converts provided [stackitem.Array] to CustodianChangedEvent or
// returns an error if it's not possible to do to so.
func (e *CustodianChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Old, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Old: %w", err)
	}

	e.New, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field New: %w", err)
	}

	return nil
}

// WhitelistTransfersToggledEvent represents "WhitelistTransfersToggled" event emitted by the contract.
type WhitelistTransfersToggledEvent struct {
	Enabled bool
}

// WhitelistTransfersToggledEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistTransfersToggled" name from the provided [result.ApplicationLog].
func WhitelistTransfersToggledEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistTransfersToggledEvent, error) {
	return eventsFromApplicationLog[WhitelistTransfersToggledEvent](log, "WhitelistTransfersToggled")
}

// FromStackItem converts provided [stackitem.Array] to WhitelistTransfersToggledEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistTransfersToggledEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}

	e.Enabled, err = arr[0].TryBool()
	if err != nil {
		return fmt.Errorf("field Enabled: %w", err)
	}

	return nil
}
