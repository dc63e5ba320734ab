package tests

import (
	"crypto/sha256"
	"math/big"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/poa-contract/rpc/poatoken"
	"github.com/nspcc-dev/poa-contract/rpc/registry"
	"github.com/stretchr/testify/require"
)

const (
	poaTokenPath      = "../contracts/poatoken"
	registryPath      = "../contracts/registry"
	whitelistPath     = "../contracts/whitelist"
	exchangeRatesPath = "../contracts/exchangerates"
	feeManagerPath    = "../contracts/feemanager"
	reentrantPath     = "../internal/testcontracts/reentrant"
)

const (
	defaultName              = "TestPoa"
	defaultSymbol            = "TPA"
	defaultFiatCurrency      = "EUR"
	defaultFiatRate          = 33333
	defaultFundingGoal       = 500_000
	defaultFundingTimeout    = 24 * 60 * 60 * 1000
	defaultActivationTimeout = 7 * defaultFundingTimeout
	defaultStartDelay        = 60_000

	gasUnit   = 1_0000_0000
	buyersNum = 5
)

var (
	defaultTargetSupply = new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil)
	payoutScale         = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

// poaEnv is a PoA Token deployed together with its registry, whitelist,
// exchange rates and fee manager contracts.
type poaEnv struct {
	e *neotest.Executor

	// Invokers signed by contract owner (committee).
	token, registry, whitelist, rates, feeManager *neotest.ContractInvoker

	gas       *neotest.ContractInvoker
	broker    neotest.Signer
	custodian neotest.Signer
	buyers    []neotest.Signer

	startTime uint64
}

// newPoaEnvNoSetup deploys all contracts, registers collaborators, sets
// default rate and whitelists buyers. PoA Token is left uninitialized.
func newPoaEnvNoSetup(t *testing.T) *poaEnv {
	e := newExecutor(t)

	p := &poaEnv{
		e:          e,
		registry:   deployPoaContract(t, e, registryPath),
		whitelist:  deployPoaContract(t, e, whitelistPath),
		rates:      deployPoaContract(t, e, exchangeRatesPath),
		feeManager: deployPoaContract(t, e, feeManagerPath),
		token:      deployPoaContract(t, e, poaTokenPath),
		gas:        e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas)),
		broker:     e.NewAccount(t),
		custodian:  e.NewAccount(t),
	}

	for name, h := range (registry.Contracts{
		FeeManager:    p.feeManager.Hash,
		ExchangeRates: p.rates.Hash,
		Whitelist:     p.whitelist.Hash,
	}).Names() {
		p.registry.Invoke(t, stackitem.Null{}, "updateContractAddress", name, h)
	}

	p.rates.Invoke(t, stackitem.Null{}, "setRate", defaultFiatCurrency, defaultFiatRate)

	for i := 0; i < buyersNum; i++ {
		acc := e.NewAccount(t)
		p.whitelist.Invoke(t, stackitem.Null{}, "addAddress", acc.ScriptHash())
		p.buyers = append(p.buyers, acc)
	}
	return p
}

// newPoaEnv returns environment with PoA Token set up with default values.
// The sale starts in a minute.
func newPoaEnv(t *testing.T) *poaEnv {
	p := newPoaEnvNoSetup(t)
	p.startTime = p.e.TopBlock(t).Timestamp + defaultStartDelay
	p.token.Invoke(t, stackitem.Null{}, "setup", p.setupArgs()...)
	return p
}

func (p *poaEnv) setupArgs() []any {
	return []any{
		defaultName, defaultSymbol, defaultFiatCurrency,
		p.broker.ScriptHash(), p.custodian.ScriptHash(), p.registry.Hash,
		defaultTargetSupply, int64(p.startTime),
		int64(defaultFundingTimeout), int64(defaultActivationTimeout),
		int64(defaultFundingGoal),
	}
}

// as returns PoA Token invoker signed by s.
func (p *poaEnv) as(s neotest.Signer) *neotest.ContractInvoker {
	return p.token.WithSigners(s)
}

// travel makes the next transaction be executed at ts+1.
func (p *poaEnv) travel(t *testing.T, ts uint64) {
	b := p.token.NewUnsignedBlock(t)
	b.Timestamp = ts
	require.NoError(t, p.token.Chain.AddBlock(p.token.SignBlock(b)))
}

// pay transfers GAS from s to PoA Token.
func (p *poaEnv) pay(t *testing.T, s neotest.Signer, amount int64, data any) util.Uint256 {
	return p.gas.WithSigners(s).Invoke(t, true, "transfer", s.ScriptHash(), p.token.Hash, amount, data)
}

func (p *poaEnv) payFail(t *testing.T, s neotest.Signer, amount int64, data any, msg string) {
	p.gas.WithSigners(s).InvokeFail(t, msg, "transfer", s.ScriptHash(), p.token.Hash, amount, data)
}

// payout distributes amount of GAS paid by custodian.
func (p *poaEnv) payout(t *testing.T, amount int64) util.Uint256 {
	return p.pay(t, p.custodian, amount, poatoken.PayoutData)
}

func (p *poaEnv) startSale(t *testing.T) {
	p.travel(t, p.startTime)
	p.token.Invoke(t, stackitem.Null{}, "startSale")
	p.checkStage(t, poatoken.StageFunding)
}

// fund reaches the funding goal at the default rate: the first buyers pay
// 3 GAS each, the last one overpays.
func (p *poaEnv) fund(t *testing.T) {
	p.startSale(t)
	for i := 0; i < buyersNum-1; i++ {
		p.pay(t, p.buyers[i], 3*gasUnit, nil)
	}
	p.pay(t, p.buyers[buyersNum-1], 4*gasUnit, nil)
	p.checkStage(t, poatoken.StagePending)
}

// activate funds the round and activates the asset.
func (p *poaEnv) activate(t *testing.T) {
	p.fund(t)
	p.as(p.custodian).Invoke(t, stackitem.Null{}, "activate", newProof("activation"))
	p.checkStage(t, poatoken.StageActive)
}

func (p *poaEnv) getInt(t *testing.T, method string, args ...any) *big.Int {
	s, err := p.token.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().BigInt()
}

func (p *poaEnv) checkStage(t *testing.T, exp poatoken.Stage) {
	require.Equal(t, exp, poatoken.Stage(p.getInt(t, "stage").Int64()), "expected stage %s", exp)
}

func (p *poaEnv) balanceOf(t *testing.T, s neotest.Signer) *big.Int {
	return p.getInt(t, "balanceOf", s.ScriptHash())
}

func (p *poaEnv) currentPayout(t *testing.T, h util.Uint160) *big.Int {
	return p.getInt(t, "currentPayout", h, true)
}

func (p *poaEnv) gasBalance(h util.Uint160) *big.Int {
	return p.e.Chain.GetUtilityTokenBalance(h)
}

// events returns items of all PoA Token events with the name emitted by the
// transaction.
func (p *poaEnv) events(t *testing.T, h util.Uint256, name string) [][]stackitem.Item {
	return contractEvents(t, p.e, h, p.token.Hash, name)
}

func contractEvents(t *testing.T, e *neotest.Executor, h util.Uint256, contract util.Uint160, name string) [][]stackitem.Item {
	aer := e.GetTxExecResult(t, h)

	var res [][]stackitem.Item
	for _, ev := range aer.Events {
		if ev.ScriptHash.Equals(contract) && ev.Name == name {
			res = append(res, ev.Item.Value().([]stackitem.Item))
		}
	}
	return res
}

// txFee returns system and network fees paid by the sender of the
// transaction.
func (p *poaEnv) txFee(t *testing.T, h util.Uint256) *big.Int {
	tx, _, err := p.e.Chain.GetTransaction(h)
	require.NoError(t, err)
	return big.NewInt(tx.SystemFee + tx.NetworkFee)
}

// nonSHA256Proofs look like IPFS hashes but carry another multihash header.
var nonSHA256Proofs = []string{
	"Qm" + strings.Repeat("1", 44),
	"Qm" + strings.Repeat("z", 44),
}

// newProof returns a valid IPFS hash derived from seed.
func newProof(seed string) string {
	return poatoken.NewProofOfCustody(sha256.Sum256([]byte(seed)))
}

func expGASToTokens(amount, rate int64) *big.Int {
	res := new(big.Int).Mul(big.NewInt(amount), big.NewInt(rate))
	res.Mul(res, defaultTargetSupply)
	return res.Div(res, new(big.Int).Mul(big.NewInt(gasUnit), big.NewInt(defaultFundingGoal)))
}

func expFiatCentsToTokens(cents int64) *big.Int {
	res := new(big.Int).Mul(big.NewInt(cents), defaultTargetSupply)
	return res.Div(res, big.NewInt(defaultFundingGoal))
}

func expFundingGoalInGAS(rate, fundedCents int64) int64 {
	return (defaultFundingGoal - fundedCents) * gasUnit / rate
}

func expFee(amount int64) int64 {
	return amount * 5 / 1000
}

// expShare returns payout of balance tokens for per-token increment.
func expShare(balance, increment *big.Int) *big.Int {
	res := new(big.Int).Mul(balance, increment)
	return res.Div(res, payoutScale)
}

func bigSum(xs ...*big.Int) *big.Int {
	res := new(big.Int)
	for _, x := range xs {
		res.Add(res, x)
	}
	return res
}
