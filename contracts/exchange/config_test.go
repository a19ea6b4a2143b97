package exchange_test

import (
	"encoding/json"
	"path"
	"testing"

	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	c := newExchangeInvoker(t)
	c.Invoke(t, common.Version, "version")
}

func TestDeployDefaults(t *testing.T) {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)
	ctr := neotest.CompileFile(t, e.CommitteeHash, exchangePath, path.Join(exchangePath, "config.yml"))

	t.Run("invalid data", func(t *testing.T) {
		e.DeployContractCheckFAULT(t, ctr, []any{int64(1)}, "InvalidArgument: deploy data must be")
		e.DeployContractCheckFAULT(t, ctr, []any{int64(-1), int64(5)}, "InvalidArgument: negative lock duration")
	})

	e.DeployContract(t, ctr, nil)
	c := e.CommitteeInvoker(ctr.Hash)

	c.Invoke(t, exchangeconst.DefaultRequestLockDuration, "config", exchangeconst.RequestLockDurationKey)
	c.Invoke(t, exchangeconst.DefaultTaskLockDuration, "config", exchangeconst.TaskLockDurationKey)
	c.Invoke(t, 0, "config", "unknown")
}

func TestSetConfig(t *testing.T) {
	c := newExchangeInvoker(t)
	acc := c.NewAccount(t)

	c.Invoke(t, requestLock, "config", exchangeconst.RequestLockDurationKey)
	c.Invoke(t, taskLock, "config", exchangeconst.TaskLockDurationKey)

	c.WithSigners(acc).InvokeFail(t, "Unauthorized: committee witness check failed",
		"setConfig", exchangeconst.TaskLockDurationKey, 1)
	c.InvokeFail(t, "InvalidArgument: invalid config record", "setConfig", exchangeconst.TaskLockDurationKey, -1)
	c.InvokeFail(t, "InvalidArgument: invalid config record", "setConfig", "", 1)

	c.Invoke(t, stackitem.Null{}, "setConfig", exchangeconst.TaskLockDurationKey, 1)
	c.Invoke(t, 1, "config", exchangeconst.TaskLockDurationKey)

	s, err := c.TestInvoke(t, "listConfig")
	require.NoError(t, err)

	arr, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 2)

	// Records are sorted by key.
	expected := []struct {
		key string
		val int64
	}{
		{exchangeconst.RequestLockDurationKey, requestLock},
		{exchangeconst.TaskLockDurationKey, 1},
	}
	for i := range expected {
		pair := arr[i].Value().([]stackitem.Item)
		key, err := pair[0].TryBytes()
		require.NoError(t, err)
		val, err := pair[1].TryInteger()
		require.NoError(t, err)

		require.Equal(t, expected[i].key, string(key))
		require.EqualValues(t, expected[i].val, val.Int64())
	}

	t.Run("task lock applied", func(t *testing.T) {
		owner := newUser(t, c, 10)
		deadline := now(t, c) + 100
		c.WithSigners(owner).Invoke(t, 1, "initDataTask", owner.ScriptHash(), 10, "ipfs://task", taskKey, deadline, 1, 0)

		advanceTime(t, c, deadline)
		c.WithSigners(owner).Invoke(t, stackitem.Null{}, "unlockDeposit", 1, owner.ScriptHash())
		require.EqualValues(t, 10, balanceOf(t, c, owner.ScriptHash()))
	})
}

func TestUpdate(t *testing.T) {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)
	ctr := neotest.CompileFile(t, e.CommitteeHash, exchangePath, path.Join(exchangePath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	c := e.CommitteeInvoker(ctr.Hash)

	nef, err := ctr.NEF.Bytes()
	require.NoError(t, err)
	manifest, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	c.WithSigners(c.NewAccount(t)).InvokeFail(t, "Unauthorized: committee witness check failed",
		"update", nef, manifest, nil)
	c.InvokeFail(t, "contract is already of version", "update", nef, manifest, nil)
}
