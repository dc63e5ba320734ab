package tests

import (
	"math/big"
	"path"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/poa-contract/common"
	"github.com/nspcc-dev/poa-contract/rpc/poatoken"
	"github.com/stretchr/testify/require"
)

func TestPoaActivate(t *testing.T) {
	p := newPoaEnv(t)
	p.fund(t)

	var (
		goal  = expFundingGoalInGAS(defaultFiatRate, 0)
		fee   = expFee(goal)
		proof = newProof("custody")
	)
	require.Equal(t, int64(7500075), fee)

	// Funding timeout doesn't affect Pending round.
	p.travel(t, p.startTime+defaultFundingTimeout)

	p.token.InvokeFail(t, common.ErrUnauthorized, "activate", proof)
	p.as(p.custodian).InvokeFail(t, "not an IPFS hash", "activate", "Qm123")
	p.as(p.custodian).InvokeFail(t, "not an IPFS hash", "activate", "Xm"+proof[2:])
	p.as(p.custodian).InvokeFail(t, "not an IPFS hash", "activate", "Qm"+strings.Repeat("0", 44))
	p.as(p.buyers[0]).InvokeFail(t, common.ErrInvalidStage, "transfer",
		p.buyers[0].ScriptHash(), p.buyers[1].ScriptHash(), 1, nil)

	h := p.as(p.custodian).Invoke(t, stackitem.Null{}, "activate", proof)
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(p.broker.ScriptHash()),
		stackitem.Make(goal - fee),
		stackitem.Make(fee),
	}}, p.events(t, h, "Activated"))
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(proof)}}, p.events(t, h, "ProofOfCustodyUpdated"))
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(int64(poatoken.StageActive))}},
		p.events(t, h, "StageChanged"))
	require.Len(t, p.events(t, h, "Unpause"), 1)

	p.checkStage(t, poatoken.StageActive)
	p.token.Invoke(t, false, "paused")
	p.token.Invoke(t, proof, "proofOfCustody")

	require.Equal(t, big.NewInt(fee), p.gasBalance(p.feeManager.Hash))
	p.feeManager.Invoke(t, fee, "collected", p.token.Hash)
	p.feeManager.Invoke(t, fee, "totalCollected")

	require.Equal(t, big.NewInt(goal-fee), p.gasBalance(p.token.Hash))
	p.token.Invoke(t, goal-fee, "currentPayout", p.broker.ScriptHash(), true)
	p.token.Invoke(t, 0, "currentPayout", p.broker.ScriptHash(), false)

	p.as(p.buyers[0]).InvokeFail(t, common.ErrUnauthorized, "claim", p.broker.ScriptHash())

	gasBefore := p.gasBalance(p.broker.ScriptHash())
	h = p.as(p.broker).Invoke(t, goal-fee, "claim", p.broker.ScriptHash())
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(p.broker.ScriptHash()),
		stackitem.Make(goal - fee),
	}}, p.events(t, h, "Claim"))
	exp := new(big.Int).Sub(gasBefore, p.txFee(t, h))
	exp.Add(exp, big.NewInt(goal-fee))
	require.Equal(t, exp, p.gasBalance(p.broker.ScriptHash()))
	require.Zero(t, p.gasBalance(p.token.Hash).Sign())

	h = p.as(p.broker).Invoke(t, 0, "claim", p.broker.ScriptHash())
	require.Empty(t, p.events(t, h, "Claim"))

	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "activate", proof)
}

func TestPoaPayout(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)

	goal := expFundingGoalInGAS(defaultFiatRate, 0)
	p.as(p.broker).Invoke(t, goal-expFee(goal), "claim", p.broker.ScriptHash())
	supply := p.getInt(t, "totalSupply")

	p.payFail(t, p.buyers[0], gasUnit, poatoken.PayoutData, "only custodian can pay out")
	p.payFail(t, p.custodian, 1, poatoken.PayoutData, "payout is too low")
	p.payFail(t, p.custodian, gasUnit, nil, common.ErrInvalidStage)

	const amount = 123456789
	var (
		fee           = expFee(amount)
		distributable = big.NewInt(amount - fee)
		increment     = new(big.Int).Div(new(big.Int).Mul(distributable, payoutScale), supply)
		accounted     = ceilDiv(new(big.Int).Mul(increment, supply), payoutScale)
		dust          = new(big.Int).Sub(distributable, accounted)
	)
	require.Positive(t, dust.Sign())

	h := p.payout(t, amount)
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(amount),
		stackitem.Make(fee),
		stackitem.Make(increment),
	}}, p.events(t, h, "Payout"))
	p.token.Invoke(t, increment, "totalPerTokenPayout")
	p.token.Invoke(t, dust, "payoutDust")
	p.feeManager.Invoke(t, expFee(goal)+fee, "totalCollected")
	require.Equal(t, distributable, p.gasBalance(p.token.Hash))

	shares := make([]*big.Int, buyersNum)
	for i, b := range p.buyers {
		shares[i] = expShare(p.balanceOf(t, b), increment)
		require.Equal(t, shares[i], p.currentPayout(t, b.ScriptHash()))
		p.token.Invoke(t, shares[i], "currentPayout", b.ScriptHash(), false)
	}

	// Everything accounted is claimable, up to a unit per holder.
	claimable := bigSum(shares...)
	lost := new(big.Int).Sub(accounted, claimable)
	require.True(t, lost.Sign() >= 0 && lost.Cmp(big.NewInt(buyersNum)) <= 0, lost)

	for i, b := range p.buyers {
		h := p.as(b).Invoke(t, shares[i], "claim", b.ScriptHash())
		require.Equal(t, [][]stackitem.Item{{
			stackitem.Make(b.ScriptHash()),
			stackitem.Make(shares[i]),
		}}, p.events(t, h, "Claim"))
		p.token.Invoke(t, 0, "currentPayout", b.ScriptHash(), true)
		p.as(b).Invoke(t, 0, "claim", b.ScriptHash())
	}
	require.Equal(t, new(big.Int).Add(dust, lost), p.gasBalance(p.token.Hash))

	// Dust is added to the next payout.
	distributable = new(big.Int).Add(big.NewInt(amount-fee), dust)
	increment2 := new(big.Int).Div(new(big.Int).Mul(distributable, payoutScale), supply)
	h = p.payout(t, amount)
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(amount),
		stackitem.Make(fee),
		stackitem.Make(increment2),
	}}, p.events(t, h, "Payout"))
	p.token.Invoke(t, new(big.Int).Add(increment, increment2), "totalPerTokenPayout")
}

func TestPoaPayoutFollowsTransfers(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)

	a, b := p.buyers[0], p.buyers[buyersNum-1]
	balA, balB := p.balanceOf(t, a), p.balanceOf(t, b)

	p.payout(t, gasUnit)
	inc1 := p.getInt(t, "totalPerTokenPayout")

	p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), balA, nil)
	p.token.Invoke(t, 0, "balanceOf", a.ScriptHash())
	p.token.Invoke(t, bigSum(balA, balB), "balanceOf", b.ScriptHash())

	p.payout(t, gasUnit)
	inc2 := new(big.Int).Sub(p.getInt(t, "totalPerTokenPayout"), inc1)

	expA := expShare(balA, inc1)
	expB := bigSum(expShare(balB, inc1), expShare(bigSum(balA, balB), inc2))
	require.Equal(t, expA, p.currentPayout(t, a.ScriptHash()))
	require.Equal(t, expB, p.currentPayout(t, b.ScriptHash()))

	// Payout accrued before the transfer was reconciled by it.
	p.token.Invoke(t, 0, "currentPayout", a.ScriptHash(), false)
	p.token.Invoke(t, expShare(bigSum(balA, balB), inc2), "currentPayout", b.ScriptHash(), false)

	p.as(a).Invoke(t, expA, "claim", a.ScriptHash())
	p.as(b).Invoke(t, expB, "claim", b.ScriptHash())
}

func TestPoaTerminate(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)
	a := p.buyers[0]

	p.as(a).InvokeFail(t, common.ErrUnauthorized, "terminate")

	h := p.as(p.custodian).Invoke(t, stackitem.Null{}, "terminate")
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(int64(poatoken.StageTerminated))}},
		p.events(t, h, "StageChanged"))
	require.Len(t, p.events(t, h, "Pause"), 1)
	p.checkStage(t, poatoken.StageTerminated)
	p.token.Invoke(t, true, "paused")

	p.token.InvokeFail(t, common.ErrInvalidStage, "terminate")
	p.token.InvokeFail(t, common.ErrInvalidStage, "unpause")
	p.token.InvokeFail(t, common.ErrInvalidStage, "changeCustodianAddress", p.e.CommitteeHash)
	p.as(a).InvokeFail(t, common.ErrInvalidStage, "transfer",
		a.ScriptHash(), p.buyers[1].ScriptHash(), 1, nil)
	p.as(a).InvokeFail(t, common.ErrInvalidStage, "approve",
		a.ScriptHash(), p.buyers[1].ScriptHash(), 1)

	// Terminated asset still pays out.
	p.payout(t, gasUnit)
	share := p.currentPayout(t, a.ScriptHash())
	require.Positive(t, share.Sign())
	p.as(a).Invoke(t, share, "claim", a.ScriptHash())

	proof := newProof("terminated")
	p.as(p.custodian).Invoke(t, stackitem.Null{}, "updateProofOfCustody", proof)
	p.token.Invoke(t, proof, "proofOfCustody")
}

func TestPoaUpdateProofOfCustody(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)

	proof := newProof("update")
	p.token.InvokeFail(t, common.ErrUnauthorized, "updateProofOfCustody", proof)
	p.as(p.custodian).InvokeFail(t, "not an IPFS hash", "updateProofOfCustody", strings.Repeat("Q", 46))
	p.as(p.custodian).InvokeFail(t, "not an IPFS hash", "updateProofOfCustody", proof+"1")
	for _, wrongHeader := range nonSHA256Proofs {
		p.as(p.custodian).InvokeFail(t, "not an IPFS hash", "updateProofOfCustody", wrongHeader)
	}

	h := p.as(p.custodian).Invoke(t, stackitem.Null{}, "updateProofOfCustody", proof)
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(proof)}}, p.events(t, h, "ProofOfCustodyUpdated"))
	p.token.Invoke(t, proof, "proofOfCustody")
}

func TestPoaReentrancy(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)

	ctr := neotest.CompileFile(t, p.e.CommitteeHash, reentrantPath, path.Join(reentrantPath, "config.yml"))
	p.e.DeployContract(t, ctr, nil)
	holder := p.e.CommitteeInvoker(ctr.Hash)
	holder.Invoke(t, stackitem.Null{}, "setTarget", p.token.Hash)

	a := p.buyers[0]
	bal := p.balanceOf(t, a)
	p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), ctr.Hash, bal, "hello")

	res, err := holder.TestInvoke(t, "lastPayment")
	require.NoError(t, err)
	payment := res.Pop().Array()
	require.Len(t, payment, 3)
	require.Equal(t, stackitem.Make(a.ScriptHash()), payment[0])
	require.Equal(t, stackitem.Make(bal), payment[1])
	require.Equal(t, stackitem.Make("hello"), payment[2])

	p.payout(t, gasUnit)
	share := p.currentPayout(t, ctr.Hash)
	require.Positive(t, share.Sign())

	holder.InvokeFail(t, common.ErrReentrantCall, "claim")
	require.Equal(t, share, p.currentPayout(t, ctr.Hash))

	// Failed call leaves no lock behind.
	b := p.buyers[1]
	p.as(b).Invoke(t, p.currentPayout(t, b.ScriptHash()), "claim", b.ScriptHash())
}

func ceilDiv(a, b *big.Int) *big.Int {
	res := new(big.Int).Add(a, b)
	res.Sub(res, big.NewInt(1))
	return res.Div(res, b)
}
