package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// newExecutor returns executor over a single-node chain where committee owns
// all deployed contracts.
func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// deployPoaContract compiles the contract from ctrPath and deploys it with
// committee as the owner.
func deployPoaContract(t *testing.T, e *neotest.Executor, ctrPath string) *neotest.ContractInvoker {
	ctr := neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
	e.DeployContract(t, ctr, []any{e.CommitteeHash})
	return e.CommitteeInvoker(ctr.Hash)
}

// registryRecords drains listContracts iterator into name -> address map.
func registryRecords(t *testing.T, iter *storage.Iterator) map[string]util.Uint160 {
	res := make(map[string]util.Uint160)
	for iter.Next() {
		kv, ok := iter.Value().Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, kv, 2)

		name, err := kv[0].TryBytes()
		require.NoError(t, err)
		hash, err := kv[1].TryBytes()
		require.NoError(t, err)

		h, err := util.Uint160DecodeBytesBE(hash)
		require.NoError(t, err)
		res[string(name)] = h
	}
	return res
}

// checkHash invokes read-only method and checks that it returns h. Hashes are
// compared by bytes since getters may return them as Buffer.
func checkHash(t *testing.T, c *neotest.ContractInvoker, h util.Uint160, method string, args ...any) {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	res, err := s.Pop().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, h.BytesBE(), res)
}
