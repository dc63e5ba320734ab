package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/poa-contract/common"
	"github.com/nspcc-dev/poa-contract/rpc/poatoken"
	"github.com/stretchr/testify/require"
)

func TestPoaSetup(t *testing.T) {
	p := newPoaEnvNoSetup(t)
	p.startTime = p.e.TopBlock(t).Timestamp + defaultStartDelay

	p.token.InvokeFail(t, "not initialized", "name")
	p.token.Invoke(t, true, "paused")

	p.as(p.broker).InvokeFail(t, common.ErrUnauthorized, "setup", p.setupArgs()...)

	for _, tc := range []struct {
		name  string
		index int
		value any
		err   string
	}{
		{"empty name", 0, "", "empty name"},
		{"empty symbol", 1, "", "empty symbol"},
		{"empty currency", 2, "", "empty fiat currency"},
		{"zero broker", 3, util.Uint160{}, "broker address"},
		{"short custodian", 4, []byte{1, 2, 3}, "custodian address"},
		{"short registry", 5, []byte{1, 2, 3}, "registry address"},
		{"low supply", 6, big.NewInt(1e17), "total supply is too low"},
		{"past start", 7, int64(p.e.TopBlock(t).Timestamp), "start time must be in the future"},
		{"short funding", 8, int64(defaultFundingTimeout - 1), "funding timeout is too short"},
		{"short activation", 9, int64(defaultActivationTimeout - 1), "activation timeout is too short"},
		{"zero goal", 10, int64(0), "funding goal"},
		{"unknown currency", 2, "USD", "rate for USD is not set"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			args := p.setupArgs()
			args[tc.index] = tc.value
			p.token.InvokeFail(t, tc.err, "setup", args...)
		})
	}

	h := p.token.Invoke(t, stackitem.Null{}, "setup", p.setupArgs()...)
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(int64(poatoken.StagePreFunding))}},
		p.events(t, h, "StageChanged"))
	p.token.InvokeFail(t, common.ErrAlreadyInitialized, "setup", p.setupArgs()...)

	p.checkStage(t, poatoken.StagePreFunding)
	p.token.Invoke(t, true, "paused")
	p.token.Invoke(t, defaultName, "name")
	p.token.Invoke(t, defaultSymbol, "symbol")
	p.token.Invoke(t, 18, "decimals")
	p.token.Invoke(t, 0, "totalSupply")
	p.token.Invoke(t, defaultFiatCurrency, "fiatCurrency")
	checkHash(t, p.token, p.broker.ScriptHash(), "broker")
	checkHash(t, p.token, p.custodian.ScriptHash(), "custodian")
	checkHash(t, p.token, p.e.CommitteeHash, "owner")
	p.token.Invoke(t, int64(p.startTime), "startTime")
	p.token.Invoke(t, defaultFundingTimeout, "fundingTimeout")
	p.token.Invoke(t, defaultActivationTimeout, "activationTimeout")
	p.token.Invoke(t, defaultFundingGoal, "fundingGoalInCents")
	p.token.Invoke(t, defaultTargetSupply, "targetSupply")
	p.token.Invoke(t, "", "proofOfCustody")
	p.token.Invoke(t, false, "whitelistTransfers")
	p.token.Invoke(t, common.Version, "version")

	require.Equal(t, big.NewInt(expFundingGoalInGAS(defaultFiatRate, 0)), p.getInt(t, "fundingGoalInGAS"))
	require.Equal(t, int64(1500015000), expFundingGoalInGAS(defaultFiatRate, 0))
}

func TestPoaPreFunding(t *testing.T) {
	p := newPoaEnv(t)
	buyer := p.buyers[0]

	p.token.InvokeFail(t, "sale has not started yet", "startSale")
	p.token.InvokeFail(t, common.ErrUnauthorized, "startPreSale")

	p.payFail(t, buyer, gasUnit, nil, common.ErrInvalidStage)
	p.payFail(t, p.custodian, gasUnit, poatoken.PayoutData, common.ErrInvalidStage)
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "buyFiat", buyer.ScriptHash(), 1000)
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "activate", newProof("early"))
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "setCancelled")
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "terminate")
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "updateProofOfCustody", newProof("early"))
	p.token.InvokeFail(t, common.ErrInvalidStage, "setFailed")
	p.token.InvokeFail(t, common.ErrInvalidStage, "pause")
	p.as(buyer).InvokeFail(t, common.ErrInvalidStage, "claim", buyer.ScriptHash())
	p.as(buyer).InvokeFail(t, common.ErrInvalidStage, "reclaim", buyer.ScriptHash())
	p.as(buyer).InvokeFail(t, common.ErrInvalidStage, "transfer",
		buyer.ScriptHash(), p.buyers[1].ScriptHash(), 0, nil)

	p.as(p.custodian).Invoke(t, stackitem.Null{}, "startPreSale")
	p.checkStage(t, poatoken.StagePreSale)
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "startPreSale")

	p.travel(t, p.startTime-2)
	p.as(buyer).InvokeFail(t, common.ErrTimeoutNotReached, "startSale")

	p.travel(t, p.startTime)
	p.as(buyer).Invoke(t, stackitem.Null{}, "startSale")
	p.checkStage(t, poatoken.StageFunding)
	p.as(buyer).InvokeFail(t, common.ErrInvalidStage, "startSale")
}

func TestPoaPreFundingTimeout(t *testing.T) {
	p := newPoaEnv(t)

	p.travel(t, p.startTime+defaultFundingTimeout)

	// Expired round can't be started, failure is rolled back with the call.
	p.token.InvokeFail(t, common.ErrInvalidStage, "startSale")
	p.checkStage(t, poatoken.StagePreFunding)

	h := p.as(p.buyers[0]).Invoke(t, stackitem.Null{}, "setFailed")
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(int64(poatoken.StageFailed))}},
		p.events(t, h, "StageChanged"))
	p.checkStage(t, poatoken.StageFailed)

	p.token.InvokeFail(t, common.ErrInvalidStage, "setFailed")
	p.as(p.buyers[0]).InvokeFail(t, "nothing to reclaim", "reclaim", p.buyers[0].ScriptHash())
}

func TestPoaSetFailed(t *testing.T) {
	t.Run("funding, by owner", func(t *testing.T) {
		p := newPoaEnv(t)
		p.startSale(t)
		p.pay(t, p.buyers[0], gasUnit, nil)

		p.as(p.custodian).InvokeFail(t, common.ErrTimeoutNotReached, "setFailed")
		p.as(p.buyers[0]).InvokeFail(t, common.ErrTimeoutNotReached, "setFailed")
		p.token.Invoke(t, stackitem.Null{}, "setFailed")
		p.checkStage(t, poatoken.StageFailed)
	})
	t.Run("pending, by owner", func(t *testing.T) {
		p := newPoaEnv(t)
		p.fund(t)
		p.token.Invoke(t, stackitem.Null{}, "setFailed")
		p.checkStage(t, poatoken.StageFailed)
	})
	t.Run("active", func(t *testing.T) {
		p := newPoaEnv(t)
		p.activate(t)

		p.travel(t, p.startTime+defaultFundingTimeout+defaultActivationTimeout)
		p.token.InvokeFail(t, common.ErrInvalidStage, "setFailed")
		p.checkStage(t, poatoken.StageActive)
	})
}

func TestPoaCancel(t *testing.T) {
	for _, tc := range []struct {
		name    string
		byOwner bool
	}{
		{"by owner", true},
		{"by custodian", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := newPoaEnv(t)
			investor := p.buyers[0]
			const cents = 1000

			p.as(p.custodian).Invoke(t, stackitem.Null{}, "startPreSale")
			p.as(p.custodian).Invoke(t, stackitem.Null{}, "buyFiat", investor.ScriptHash(), cents)

			p.as(investor).InvokeFail(t, common.ErrUnauthorized, "setCancelled")
			if tc.byOwner {
				p.token.Invoke(t, stackitem.Null{}, "setCancelled")
			} else {
				p.as(p.custodian).Invoke(t, stackitem.Null{}, "setCancelled")
			}
			p.checkStage(t, poatoken.StageCancelled)

			p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "buyFiat", investor.ScriptHash(), cents)
			p.as(p.buyers[1]).InvokeFail(t, common.ErrUnauthorized, "reclaim", investor.ScriptHash())
			p.as(p.buyers[1]).InvokeFail(t, "nothing to reclaim", "reclaim", p.buyers[1].ScriptHash())

			tokens := expFiatCentsToTokens(cents)
			h := p.as(investor).Invoke(t, stackitem.Null{}, "reclaim", investor.ScriptHash())
			require.Equal(t, [][]stackitem.Item{{
				stackitem.Make(investor.ScriptHash()),
				stackitem.Make(0),
				stackitem.Make(cents),
			}}, p.events(t, h, "Reclaim"))
			require.Equal(t, [][]stackitem.Item{{
				stackitem.Make(investor.ScriptHash()),
				stackitem.Null{},
				stackitem.Make(tokens),
			}}, p.events(t, h, "Transfer"))

			p.token.Invoke(t, 0, "totalSupply")
			p.token.Invoke(t, 0, "balanceOf", investor.ScriptHash())
			p.token.Invoke(t, 0, "fundedAmountInCentsDuringFiatFunding")
			p.token.Invoke(t, 0, "fiatInvestmentPerUserInCents", investor.ScriptHash())
			p.as(investor).InvokeFail(t, "nothing to reclaim", "reclaim", investor.ScriptHash())
		})
	}
}

func TestPoaCancelFunding(t *testing.T) {
	p := newPoaEnv(t)
	p.startSale(t)
	p.as(p.custodian).InvokeFail(t, common.ErrInvalidStage, "setCancelled")
}

func TestPoaChangeCustodian(t *testing.T) {
	p := newPoaEnv(t)
	newCustodian := p.e.NewAccount(t)

	p.as(p.custodian).InvokeFail(t, common.ErrUnauthorized, "changeCustodianAddress", newCustodian.ScriptHash())
	p.token.InvokeFail(t, "custodian address", "changeCustodianAddress", p.custodian.ScriptHash())
	p.token.InvokeFail(t, "custodian address", "changeCustodianAddress", util.Uint160{})

	h := p.token.Invoke(t, stackitem.Null{}, "changeCustodianAddress", newCustodian.ScriptHash())
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(p.custodian.ScriptHash()),
		stackitem.Make(newCustodian.ScriptHash()),
	}}, p.events(t, h, "CustodianChanged"))
	checkHash(t, p.token, newCustodian.ScriptHash(), "custodian")

	p.as(p.custodian).InvokeFail(t, common.ErrUnauthorized, "startPreSale")
	p.as(newCustodian).Invoke(t, stackitem.Null{}, "startPreSale")
}

func TestPoaViews(t *testing.T) {
	p := newPoaEnv(t)

	p.token.Invoke(t, 5, "calculateFee", 1000)
	p.token.Invoke(t, 0, "calculateFee", 199)
	p.token.Invoke(t, 7500075, "calculateFee", 1500015000)

	p.token.Invoke(t, 333, "percent", 1, 3, 3)
	p.token.Invoke(t, 667, "percent", 2, 3, 3)
	p.token.Invoke(t, 50, "percent", 1, 2, 2)
	p.token.InvokeFail(t, "denominator", "percent", 1, 0, 2)

	p.token.Invoke(t, 33333, "gasToFiatCents", gasUnit)
	p.token.Invoke(t, 300003000, "fiatCentsToGAS", 100000)
	p.token.Invoke(t, expGASToTokens(gasUnit, defaultFiatRate), "gasToTokens", gasUnit)
	p.token.Invoke(t, expFiatCentsToTokens(defaultFundingGoal), "fiatCentsToTokens", defaultFundingGoal)
	p.token.Invoke(t, defaultTargetSupply, "fiatCentsToTokens", defaultFundingGoal)
}
