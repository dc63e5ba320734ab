package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/poa-contract/common"
	"github.com/stretchr/testify/require"
)

func TestPoaTransfer(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)

	a, b := p.buyers[0], p.buyers[1]
	balA, balB := p.balanceOf(t, a), p.balanceOf(t, b)
	supply := p.getInt(t, "totalSupply")

	// No witness.
	p.as(b).Invoke(t, false, "transfer", a.ScriptHash(), b.ScriptHash(), 1, nil)
	// Insufficient balance.
	p.as(a).Invoke(t, false, "transfer", a.ScriptHash(), b.ScriptHash(), new(big.Int).Add(balA, big.NewInt(1)), nil)
	p.as(a).InvokeFail(t, "negative amount", "transfer", a.ScriptHash(), b.ScriptHash(), -1, nil)
	p.as(a).InvokeFail(t, common.ErrInvalidParameter, "transfer", a.ScriptHash(), []byte{1, 2, 3}, 1, nil)

	h := p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), 1000, nil)
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(a.ScriptHash()),
		stackitem.Make(b.ScriptHash()),
		stackitem.Make(1000),
	}}, p.events(t, h, "Transfer"))

	h = p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), 0, nil)
	require.Len(t, p.events(t, h, "Transfer"), 1)
	p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), a.ScriptHash(), 500, nil)

	balA.Sub(balA, big.NewInt(1000))
	balB.Add(balB, big.NewInt(1000))
	require.Equal(t, balA, p.balanceOf(t, a))
	require.Equal(t, balB, p.balanceOf(t, b))
	p.token.Invoke(t, supply, "totalSupply")
}

func TestPoaPause(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)
	a, b := p.buyers[0], p.buyers[1]

	p.token.InvokeFail(t, "not paused", "unpause")
	p.as(p.custodian).InvokeFail(t, common.ErrUnauthorized, "pause")

	h := p.token.Invoke(t, stackitem.Null{}, "pause")
	require.Len(t, p.events(t, h, "Pause"), 1)
	p.token.Invoke(t, true, "paused")
	p.token.InvokeFail(t, "already paused", "pause")

	p.as(a).InvokeFail(t, "paused", "transfer", a.ScriptHash(), b.ScriptHash(), 1, nil)
	p.as(a).InvokeFail(t, "paused", "approve", a.ScriptHash(), b.ScriptHash(), 1)

	// Payouts and claims work while paused.
	p.payout(t, gasUnit)
	p.as(a).Invoke(t, p.currentPayout(t, a.ScriptHash()), "claim", a.ScriptHash())

	p.as(p.custodian).InvokeFail(t, common.ErrUnauthorized, "unpause")
	h = p.token.Invoke(t, stackitem.Null{}, "unpause")
	require.Len(t, p.events(t, h, "Unpause"), 1)
	p.token.Invoke(t, false, "paused")
	p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), 1, nil)
}

func TestPoaAllowance(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)
	a, b, c := p.buyers[0], p.buyers[1], p.buyers[2]
	balC := p.balanceOf(t, c)

	p.as(b).InvokeFail(t, common.ErrUnauthorized, "approve", a.ScriptHash(), b.ScriptHash(), 500)
	p.as(a).InvokeFail(t, "negative amount", "approve", a.ScriptHash(), b.ScriptHash(), -1)

	h := p.as(a).Invoke(t, true, "approve", a.ScriptHash(), b.ScriptHash(), 500)
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(a.ScriptHash()),
		stackitem.Make(b.ScriptHash()),
		stackitem.Make(500),
	}}, p.events(t, h, "Approval"))
	p.token.Invoke(t, 500, "allowance", a.ScriptHash(), b.ScriptHash())
	p.token.Invoke(t, 0, "allowance", b.ScriptHash(), a.ScriptHash())

	// Spender witness is missing.
	p.as(c).Invoke(t, false, "transferFrom", b.ScriptHash(), a.ScriptHash(), c.ScriptHash(), 100, nil)
	// Allowance is exceeded.
	p.as(b).Invoke(t, false, "transferFrom", b.ScriptHash(), a.ScriptHash(), c.ScriptHash(), 501, nil)

	h = p.as(b).Invoke(t, true, "transferFrom", b.ScriptHash(), a.ScriptHash(), c.ScriptHash(), 200, nil)
	require.Equal(t, [][]stackitem.Item{{
		stackitem.Make(a.ScriptHash()),
		stackitem.Make(c.ScriptHash()),
		stackitem.Make(200),
	}}, p.events(t, h, "Transfer"))
	p.token.Invoke(t, 300, "allowance", a.ScriptHash(), b.ScriptHash())
	require.Equal(t, new(big.Int).Add(balC, big.NewInt(200)), p.balanceOf(t, c))

	// Approval replaces the previous value.
	p.as(a).Invoke(t, true, "approve", a.ScriptHash(), b.ScriptHash(), 0)
	p.token.Invoke(t, 0, "allowance", a.ScriptHash(), b.ScriptHash())
	p.as(b).Invoke(t, false, "transferFrom", b.ScriptHash(), a.ScriptHash(), c.ScriptHash(), 1, nil)
}

func TestPoaWhitelistTransfers(t *testing.T) {
	p := newPoaEnv(t)
	p.activate(t)
	a, b := p.buyers[0], p.buyers[1]
	stranger := p.e.NewAccount(t)

	p.as(a).InvokeFail(t, common.ErrUnauthorized, "toggleWhitelistTransfers")

	h := p.token.Invoke(t, true, "toggleWhitelistTransfers")
	require.Equal(t, [][]stackitem.Item{{stackitem.Make(true)}}, p.events(t, h, "WhitelistTransfersToggled"))
	p.token.Invoke(t, true, "whitelistTransfers")

	p.as(a).InvokeFail(t, common.ErrNotWhitelisted, "transfer", a.ScriptHash(), stranger.ScriptHash(), 1, nil)
	p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), b.ScriptHash(), 1, nil)

	p.whitelist.Invoke(t, stackitem.Null{}, "removeAddress", b.ScriptHash())
	p.as(a).InvokeFail(t, common.ErrNotWhitelisted, "transfer", a.ScriptHash(), b.ScriptHash(), 1, nil)
	p.as(b).InvokeFail(t, common.ErrNotWhitelisted, "transfer", b.ScriptHash(), a.ScriptHash(), 1, nil)

	p.token.Invoke(t, false, "toggleWhitelistTransfers")
	p.token.Invoke(t, false, "whitelistTransfers")
	p.as(a).Invoke(t, true, "transfer", a.ScriptHash(), stranger.ScriptHash(), 1, nil)
	p.token.Invoke(t, 1, "balanceOf", stranger.ScriptHash())
}
