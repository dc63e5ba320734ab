// Package poatoken contains RPC wrappers for PoA Token contract.
package poatoken

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// PayoutData is the data of GAS transfers distributed among token holders.
const PayoutData = "payout"

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	Sender() util.Uint160
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Stage invokes `stage` method of contract.
func (c *ContractReader) Stage() (Stage, error) {
	s, err := unwrap.BigInt(c.invoker.Call(c.hash, "stage"))
	if err != nil {
		return 0, err
	}
	return Stage(s.Int64()), nil
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Broker invokes `broker` method of contract.
func (c *ContractReader) Broker() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "broker"))
}

// Custodian invokes `custodian` method of contract.
func (c *ContractReader) Custodian() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "custodian"))
}

// FiatCurrency invokes `fiatCurrency` method of contract.
func (c *ContractReader) FiatCurrency() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "fiatCurrency"))
}

// StartTime invokes `startTime` method of contract.
func (c *ContractReader) StartTime() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "startTime"))
}

// FundingTimeout invokes `fundingTimeout` method of contract.
func (c *ContractReader) FundingTimeout() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundingTimeout"))
}

// ActivationTimeout invokes `activationTimeout` method of contract.
func (c *ContractReader) ActivationTimeout() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "activationTimeout"))
}

// FundingGoalInCents invokes `fundingGoalInCents` method of contract.
func (c *ContractReader) FundingGoalInCents() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundingGoalInCents"))
}

// TargetSupply invokes `targetSupply` method of contract.
func (c *ContractReader) TargetSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "targetSupply"))
}

// CreationTime invokes `creationTime` method of contract.
func (c *ContractReader) CreationTime() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "creationTime"))
}

// ProofOfCustody invokes `proofOfCustody` method of contract.
func (c *ContractReader) ProofOfCustody() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "proofOfCustody"))
}

// WhitelistTransfers invokes `whitelistTransfers` method of contract.
func (c *ContractReader) WhitelistTransfers() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "whitelistTransfers"))
}

// CalculateFee invokes `calculateFee` method of contract.
func (c *ContractReader) CalculateFee(amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateFee", amount))
}

// Percent invokes `percent` method of contract.
func (c *ContractReader) Percent(numerator *big.Int, denominator *big.Int, precision *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "percent", numerator, denominator, precision))
}

// Paused invokes `paused` method of contract.
func (c *ContractReader) Paused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "paused"))
}

// FundingGoalInGAS invokes `fundingGoalInGAS` method of contract.
func (c *ContractReader) FundingGoalInGAS() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundingGoalInGAS"))
}

// FundedAmountInGAS invokes `fundedAmountInGAS` method of contract.
func (c *ContractReader) FundedAmountInGAS() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundedAmountInGAS"))
}

// FundedAmountInCentsDuringFiatFunding invokes `fundedAmountInCentsDuringFiatFunding` method of contract.
func (c *ContractReader) FundedAmountInCentsDuringFiatFunding() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fundedAmountInCentsDuringFiatFunding"))
}

// InvestmentAmountPerUserInGAS invokes `investmentAmountPerUserInGAS` method of contract.
func (c *ContractReader) InvestmentAmountPerUserInGAS(investor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "investmentAmountPerUserInGAS", investor))
}

// FiatInvestmentPerUserInCents invokes `fiatInvestmentPerUserInCents` method of contract.
func (c *ContractReader) FiatInvestmentPerUserInCents(investor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fiatInvestmentPerUserInCents", investor))
}

// GASToFiatCents invokes `gasToFiatCents` method of contract.
func (c *ContractReader) GASToFiatCents(amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "gasToFiatCents", amount))
}

// FiatCentsToGAS invokes `fiatCentsToGAS` method of contract.
func (c *ContractReader) FiatCentsToGAS(cents *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fiatCentsToGAS", cents))
}

// GASToTokens invokes `gasToTokens` method of contract.
func (c *ContractReader) GASToTokens(amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "gasToTokens", amount))
}

// FiatCentsToTokens invokes `fiatCentsToTokens` method of contract.
func (c *ContractReader) FiatCentsToTokens(cents *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "fiatCentsToTokens", cents))
}

// CurrentPayout invokes `currentPayout` method of contract.
func (c *ContractReader) CurrentPayout(holder util.Uint160, includeUnclaimed bool) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "currentPayout", holder, includeUnclaimed))
}

// TotalPerTokenPayout invokes `totalPerTokenPayout` method of contract.
func (c *ContractReader) TotalPerTokenPayout() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalPerTokenPayout"))
}

// PayoutDust invokes `payoutDust` method of contract.
func (c *ContractReader) PayoutDust() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "payoutDust"))
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// Setup creates a transaction invoking `setup` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Setup(name string, symbol string, fiatCurrency string, broker util.Uint160, custodian util.Uint160, registry util.Uint160, targetSupply *big.Int, startTime *big.Int, fundingTimeout *big.Int, activationTimeout *big.Int, fundingGoalInCents *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setup", name, symbol, fiatCurrency, broker, custodian, registry, targetSupply, startTime, fundingTimeout, activationTimeout, fundingGoalInCents)
}

// SetupTransaction creates a transaction invoking `setup` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetupTransaction(name string, symbol string, fiatCurrency string, broker util.Uint160, custodian util.Uint160, registry util.Uint160, targetSupply *big.Int, startTime *big.Int, fundingTimeout *big.Int, activationTimeout *big.Int, fundingGoalInCents *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setup", name, symbol, fiatCurrency, broker, custodian, registry, targetSupply, startTime, fundingTimeout, activationTimeout, fundingGoalInCents)
}

// SetupUnsigned creates a transaction invoking `setup` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetupUnsigned(name string, symbol string, fiatCurrency string, broker util.Uint160, custodian util.Uint160, registry util.Uint160, targetSupply *big.Int, startTime *big.Int, fundingTimeout *big.Int, activationTimeout *big.Int, fundingGoalInCents *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setup", nil, name, symbol, fiatCurrency, broker, custodian, registry, targetSupply, startTime, fundingTimeout, activationTimeout, fundingGoalInCents)
}

// StartPreSale creates a transaction invoking `startPreSale` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartPreSale() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startPreSale")
}

// StartPreSaleTransaction creates a transaction invoking `startPreSale` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartPreSaleTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startPreSale")
}

// StartPreSaleUnsigned creates a transaction invoking `startPreSale` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartPreSaleUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startPreSale", nil)
}

// StartSale creates a transaction invoking `startSale` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartSale() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startSale")
}

// StartSaleTransaction creates a transaction invoking `startSale` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartSaleTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startSale")
}

// StartSaleUnsigned creates a transaction invoking `startSale` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartSaleUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startSale", nil)
}

// BuyFiat creates a transaction invoking `buyFiat` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuyFiat(investor util.Uint160, amountInCents *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buyFiat", investor, amountInCents)
}

// BuyFiatTransaction creates a transaction invoking `buyFiat` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyFiatTransaction(investor util.Uint160, amountInCents *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buyFiat", investor, amountInCents)
}

// BuyFiatUnsigned creates a transaction invoking `buyFiat` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyFiatUnsigned(investor util.Uint160, amountInCents *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buyFiat", nil, investor, amountInCents)
}

// Activate creates a transaction invoking `activate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Activate(proofOfCustody string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "activate", proofOfCustody)
}

// ActivateTransaction creates a transaction invoking `activate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ActivateTransaction(proofOfCustody string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "activate", proofOfCustody)
}

// ActivateUnsigned creates a transaction invoking `activate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ActivateUnsigned(proofOfCustody string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "activate", nil, proofOfCustody)
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(holder util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", holder)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(holder util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", holder)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(holder util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, holder)
}

// Reclaim creates a transaction invoking `reclaim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Reclaim(holder util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reclaim", holder)
}

// ReclaimTransaction creates a transaction invoking `reclaim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReclaimTransaction(holder util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reclaim", holder)
}

// ReclaimUnsigned creates a transaction invoking `reclaim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReclaimUnsigned(holder util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reclaim", nil, holder)
}

// SetFailed creates a transaction invoking `setFailed` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFailed() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFailed")
}

// SetFailedTransaction creates a transaction invoking `setFailed` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFailedTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFailed")
}

// SetFailedUnsigned creates a transaction invoking `setFailed` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFailedUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFailed", nil)
}

// SetCancelled creates a transaction invoking `setCancelled` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCancelled() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCancelled")
}

// SetCancelledTransaction creates a transaction invoking `setCancelled` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCancelledTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCancelled")
}

// SetCancelledUnsigned creates a transaction invoking `setCancelled` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCancelledUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCancelled", nil)
}

// Terminate creates a transaction invoking `terminate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Terminate() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "terminate")
}

// TerminateTransaction creates a transaction invoking `terminate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TerminateTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "terminate")
}

// TerminateUnsigned creates a transaction invoking `terminate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TerminateUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "terminate", nil)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause")
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause")
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil)
}

// Unpause creates a transaction invoking `unpause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unpause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpause")
}

// UnpauseTransaction creates a transaction invoking `unpause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpause")
}

// UnpauseUnsigned creates a transaction invoking `unpause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpause", nil)
}

// UpdateProofOfCustody creates a transaction invoking `updateProofOfCustody` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateProofOfCustody(proofOfCustody string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateProofOfCustody", proofOfCustody)
}

// UpdateProofOfCustodyTransaction creates a transaction invoking `updateProofOfCustody` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateProofOfCustodyTransaction(proofOfCustody string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateProofOfCustody", proofOfCustody)
}

// UpdateProofOfCustodyUnsigned creates a transaction invoking `updateProofOfCustody` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateProofOfCustodyUnsigned(proofOfCustody string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateProofOfCustody", nil, proofOfCustody)
}

// ChangeCustodianAddress creates a transaction invoking `changeCustodianAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeCustodianAddress(custodian util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeCustodianAddress", custodian)
}

// ChangeCustodianAddressTransaction creates a transaction invoking `changeCustodianAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeCustodianAddressTransaction(custodian util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeCustodianAddress", custodian)
}

// ChangeCustodianAddressUnsigned creates a transaction invoking `changeCustodianAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeCustodianAddressUnsigned(custodian util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeCustodianAddress", nil, custodian)
}

// ToggleWhitelistTransfers creates a transaction invoking `toggleWhitelistTransfers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ToggleWhitelistTransfers() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "toggleWhitelistTransfers")
}

// ToggleWhitelistTransfersTransaction creates a transaction invoking `toggleWhitelistTransfers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ToggleWhitelistTransfersTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "toggleWhitelistTransfers")
}

// ToggleWhitelistTransfersUnsigned creates a transaction invoking `toggleWhitelistTransfers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ToggleWhitelistTransfersUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "toggleWhitelistTransfers", nil)
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, amount)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, amount)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, amount)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount, data)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// Contribute transfers GAS from the actor's account to the contract buying
// tokens during Funding stage.
// The values returned are transaction hash, its ValidUntilBlock value and error if any.
func (c *Contract) Contribute(amount *big.Int) (util.Uint256, uint32, error) {
	return gas.New(c.actor).Transfer(c.actor.Sender(), c.hash, amount, nil)
}

// Distribute transfers GAS from the actor's account to the contract as a
// payout to token holders. Only custodian can do it.
// The values returned are transaction hash, its ValidUntilBlock value and error if any.
func (c *Contract) Distribute(amount *big.Int) (util.Uint256, uint32, error) {
	return gas.New(c.actor).Transfer(c.actor.Sender(), c.hash, amount, PayoutData)
}
