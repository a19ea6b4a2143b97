package exchange_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestListItem(t *testing.T) {
	c := newExchangeInvoker(t)
	owner := c.NewAccount(t)
	other := c.NewAccount(t)

	cOwner := c.WithSigners(owner)
	c.WithSigners(other).InvokeFail(t, "Unauthorized: witness check failed", "listItem",
		owner.ScriptHash(), 100, "ipfs://item", []byte("proof"))
	cOwner.InvokeFail(t, "InvalidArgument", "listItem",
		owner.ScriptHash(), -1, "ipfs://item", []byte("proof"))

	cOwner.Invoke(t, 1, "listItem", owner.ScriptHash(), 100, "ipfs://item", []byte("proof"))
	cOwner.Invoke(t, 2, "listItem", owner.ScriptHash(), 200, "ipfs://other", nil)

	l := getListing(t, c, 1)
	require.EqualValues(t, 1, l.ID.Int64())
	require.EqualValues(t, 2, l.Kind.Int64())
	require.Equal(t, owner.ScriptHash(), l.Owner)
	require.EqualValues(t, 100, l.Price.Int64())
	require.True(t, l.Active)
	require.Equal(t, "ipfs://item", l.Metadata)
	require.Equal(t, []byte("proof"), l.Proof)
	require.Zero(t, l.TotalParticipants.Int64())

	require.Empty(t, getListing(t, c, 2).Proof)

	c.InvokeFail(t, "NotFound: listing 3", "getListing", 3)

	s, err := c.TestInvoke(t, "listingsOf", owner.ScriptHash())
	require.NoError(t, err)
	ids := iteratorToArray(s.Pop().Value().(*storage.Iterator))
	require.Len(t, ids, 2)
	for i := range ids {
		id, err := ids[i].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, i+1, id.Int64())
	}
}

func TestListAsset(t *testing.T) {
	c := newExchangeInvoker(t)
	owner := c.NewAccount(t)
	cOwner := c.WithSigners(owner)

	cOwner.InvokeFail(t, "InvalidArgument: commission rate is out of range", "listAsset",
		owner.ScriptHash(), 100, "ipfs://asset", 0, 10_001)
	cOwner.InvokeFail(t, "NotFound: parent listing 7", "listAsset",
		owner.ScriptHash(), 100, "ipfs://asset", 7, 0)

	cOwner.Invoke(t, 1, "listAsset", owner.ScriptHash(), 100, "ipfs://parent", 0, 2_500)
	cOwner.Invoke(t, 2, "listItem", owner.ScriptHash(), 100, "ipfs://item", []byte{})
	cOwner.InvokeFail(t, "InvalidArgument: listing 2 is not an asset", "listAsset",
		owner.ScriptHash(), 100, "ipfs://child", 2, 0)
	cOwner.Invoke(t, 3, "listAsset", owner.ScriptHash(), 100, "ipfs://child", 1, 0)

	parent := getListing(t, c, 1)
	require.EqualValues(t, 1, parent.Kind.Int64())
	require.EqualValues(t, 2_500, parent.CommissionRate.Int64())

	child := getListing(t, c, 3)
	require.EqualValues(t, 1, child.Parent.Int64())
}

func TestDeactivate(t *testing.T) {
	c := newExchangeInvoker(t)
	owner := c.NewAccount(t)
	other := c.NewAccount(t)

	cOwner := c.WithSigners(owner)
	cOther := c.WithSigners(other)

	cOwner.Invoke(t, 1, "listItem", owner.ScriptHash(), 100, "ipfs://item", []byte{})

	cOther.InvokeFail(t, "Unauthorized: listing 1 caller is not the owner", "deactivate",
		1, other.ScriptHash())
	cOther.InvokeFail(t, "Unauthorized: witness check failed", "deactivate",
		1, owner.ScriptHash())
	cOwner.InvokeFail(t, "NotFound: listing 2", "deactivate", 2, owner.ScriptHash())

	cOwner.Invoke(t, stackitem.Null{}, "deactivate", 1, owner.ScriptHash())
	require.False(t, getListing(t, c, 1).Active)

	cOwner.InvokeFail(t, "AlreadyInactive: listing 1", "deactivate", 1, owner.ScriptHash())
	cOwner.InvokeFail(t, "AlreadyInactive: listing 1", "reprice", 1, owner.ScriptHash(), 50)
	require.False(t, getListing(t, c, 1).Active)
}

func TestReprice(t *testing.T) {
	c := newExchangeInvoker(t)
	owner := newUser(t, c, 100)
	other := c.NewAccount(t)

	cOwner := c.WithSigners(owner)

	cOwner.Invoke(t, 1, "listItem", owner.ScriptHash(), 100, "ipfs://item", []byte{})
	c.WithSigners(other).InvokeFail(t, "Unauthorized", "reprice", 1, other.ScriptHash(), 1)
	cOwner.InvokeFail(t, "InvalidArgument", "reprice", 1, owner.ScriptHash(), -1)

	cOwner.Invoke(t, stackitem.Null{}, "reprice", 1, owner.ScriptHash(), 70)
	require.EqualValues(t, 70, getListing(t, c, 1).Price.Int64())

	t.Run("task", func(t *testing.T) {
		deadline := now(t, c) + 10_000
		cOwner.Invoke(t, 2, "initDataTask", owner.ScriptHash(), 10, "ipfs://task",
			[]byte{0x02}, deadline, 3, 0)
		cOwner.InvokeFail(t, "ImmutableTerms: listing 2", "reprice", 2, owner.ScriptHash(), 5)
	})
}
