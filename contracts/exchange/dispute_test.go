package exchange_test

import (
	"testing"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

var (
	buyerKey = []byte("buyer public key")
	content  = []byte("delivered content")
)

func getRequestDispute(t *testing.T, c *neotest.ContractInvoker, id int64) *exchange.DisputeDispute {
	s, err := c.TestInvoke(t, "getRequestDispute", id)
	require.NoError(t, err)

	res := new(exchange.DisputeDispute)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

// newFulfilledRequest lists an item for 100 and returns request 1 of the
// buyer fulfilled with the content commitment.
func newFulfilledRequest(t *testing.T, c *neotest.ContractInvoker) (seller, buyer neotest.Signer) {
	seller = newUser(t, c, 0)
	buyer = newUser(t, c, 1000)

	c.WithSigners(seller).Invoke(t, 1, "listItem", seller.ScriptHash(), 100, "ipfs://item", []byte{})
	c.WithSigners(buyer).Invoke(t, 1, "createRequest", 1, buyer.ScriptHash(), buyerKey)
	c.WithSigners(seller).Invoke(t, stackitem.Null{}, "fulfill", 1, seller.ScriptHash(),
		[]byte("artifact"), exchange.Commitment(buyerKey, content))

	return seller, buyer
}

func TestCommitmentOf(t *testing.T) {
	c := newExchangeInvoker(t)
	c.Invoke(t, exchange.Commitment(buyerKey, content), "commitmentOf", buyerKey, content)
}

func TestFileRequestDispute(t *testing.T) {
	c := newExchangeInvoker(t)
	seller := newUser(t, c, 0)
	buyer := newUser(t, c, 1000)
	cBuyer := c.WithSigners(buyer)
	cSeller := c.WithSigners(seller)

	cSeller.Invoke(t, 1, "listItem", seller.ScriptHash(), 100, "ipfs://item", []byte{})
	cBuyer.Invoke(t, 1, "createRequest", 1, buyer.ScriptHash(), buyerKey)

	cBuyer.InvokeFail(t, "NotFulfilled: request 1", "fileRequestDispute",
		1, buyer.ScriptHash(), content, "not delivered")

	cSeller.Invoke(t, stackitem.Null{}, "fulfill", 1, seller.ScriptHash(),
		[]byte("artifact"), exchange.Commitment(buyerKey, content))

	cSeller.InvokeFail(t, "Unauthorized: request 1 caller is not the requester", "fileRequestDispute",
		1, seller.ScriptHash(), content, "")
	cBuyer.InvokeFail(t, "InvalidArgument: request 1 preimage is missing", "fileRequestDispute",
		1, buyer.ScriptHash(), []byte{}, "")
	cBuyer.InvokeFail(t, "HashMismatch: request 1", "fileRequestDispute",
		1, buyer.ScriptHash(), []byte("other content"), "")
	c.InvokeFail(t, "NotFound: request 1 has no dispute", "getRequestDispute", 1)

	cBuyer.Invoke(t, stackitem.Null{}, "fileRequestDispute", 1, buyer.ScriptHash(), content, "broken data")
	require.True(t, getRequest(t, c, 1).Disputed)

	d := getRequestDispute(t, c, 1)
	require.EqualValues(t, 1, d.Subject.Int64())
	require.EqualValues(t, -1, d.Index.Int64())
	require.Equal(t, buyer.ScriptHash(), d.Filer)
	require.Equal(t, content, d.Evidence)
	require.Equal(t, "broken data", d.Description)
	require.False(t, d.Resolved)

	cBuyer.InvokeFail(t, "AlreadyDisputed: request 1", "fileRequestDispute",
		1, buyer.ScriptHash(), content, "")
	cBuyer.InvokeFail(t, "DisputePending: request 1", "releasePayment", 1, buyer.ScriptHash())
	cBuyer.InvokeFail(t, "AlreadyFulfilled: request 1", "cancelRequest", 1, buyer.ScriptHash())

	advanceTime(t, c, getRequest(t, c, 1).FulfillTime.Int64()+requestLock)
	cSeller.InvokeFail(t, "DisputePending: request 1", "releasePayment", 1, seller.ScriptHash())
}

func TestResolveRequestDispute(t *testing.T) {
	t.Run("against requester", func(t *testing.T) {
		c := newExchangeInvoker(t)
		seller, buyer := newFulfilledRequest(t, c)
		arbiter := designateArbiter(t, c)

		c.WithSigners(buyer).Invoke(t, stackitem.Null{}, "fileRequestDispute", 1, buyer.ScriptHash(), content, "")

		c.WithSigners(buyer).InvokeFail(t, "Unauthorized", "resolveRequestDispute", 1, true)
		c.InvokeFail(t, "Unauthorized", "resolveRequestDispute", 1, true)

		cArbiter := c.WithSigners(arbiter)
		cArbiter.Invoke(t, stackitem.Null{}, "resolveRequestDispute", 1, false)

		require.EqualValues(t, 100, balanceOf(t, c, seller.ScriptHash()))
		require.EqualValues(t, 900, balanceOf(t, c, buyer.ScriptHash()))
		require.EqualValues(t, -1, reputationOf(t, c, buyer.ScriptHash()))
		require.EqualValues(t, 0, reputationOf(t, c, seller.ScriptHash()))
		require.False(t, getRequest(t, c, 1).Active)

		d := getRequestDispute(t, c, 1)
		require.True(t, d.Resolved)
		require.False(t, d.Result)

		cArbiter.InvokeFail(t, "AlreadyResolved: request 1", "resolveRequestDispute", 1, true)
		c.WithSigners(buyer).InvokeFail(t, "InactiveEntity: request 1", "releasePayment", 1, buyer.ScriptHash())

		requireConservation(t, c, seller.ScriptHash(), buyer.ScriptHash(), exchange.EscrowAccount(1))
	})

	t.Run("in favor of requester", func(t *testing.T) {
		c := newExchangeInvoker(t)
		seller, buyer := newFulfilledRequest(t, c)
		arbiter := designateArbiter(t, c)

		c.WithSigners(buyer).Invoke(t, stackitem.Null{}, "fileRequestDispute", 1, buyer.ScriptHash(), content, "")
		c.WithSigners(arbiter).Invoke(t, stackitem.Null{}, "resolveRequestDispute", 1, true)

		require.EqualValues(t, 0, balanceOf(t, c, seller.ScriptHash()))
		require.EqualValues(t, 1000, balanceOf(t, c, buyer.ScriptHash()))
		require.EqualValues(t, 1, reputationOf(t, c, buyer.ScriptHash()))
		require.EqualValues(t, -1, reputationOf(t, c, seller.ScriptHash()))
		require.True(t, getRequestDispute(t, c, 1).Result)

		c.WithSigners(buyer).InvokeFail(t, "InactiveEntity: request 1 is settled", "fileRequestDispute",
			1, buyer.ScriptHash(), content, "")
	})

	t.Run("no dispute", func(t *testing.T) {
		c := newExchangeInvoker(t)
		newFulfilledRequest(t, c)
		arbiter := designateArbiter(t, c)

		c.WithSigners(arbiter).InvokeFail(t, "NotFound: request 1 has no dispute", "resolveRequestDispute", 1, true)
	})
}

func TestSubmissionDispute(t *testing.T) {
	c := newExchangeInvoker(t)
	owner := newUser(t, c, 1000)
	ps := newParticipants(t, c, 3)
	arbiter := designateArbiter(t, c)
	escrow := exchange.TaskEscrowAccount(1)

	cOwner := c.WithSigners(owner)
	deadline := now(t, c) + 10_000
	cOwner.Invoke(t, 1, "initDataTask", owner.ScriptHash(), 10, "ipfs://task", taskKey, deadline, 3, 0)

	data := [][]byte{[]byte("data 0"), []byte("data 1"), []byte("data 2")}
	for i := range ps {
		c.WithSigners(ps[i]).Invoke(t, i, "submit", 1, ps[i].ScriptHash(), exchange.Commitment(taskKey, data[i]))
	}

	cOwner.Invoke(t, stackitem.Null{}, "evaluate", 1, owner.ScriptHash(), []any{true, false, false})

	cp0 := c.WithSigners(ps[0])
	cp0.InvokeFail(t, "InactiveEntity: task 1 submission is settled", "fileSubmissionDispute",
		1, 0, ps[0].ScriptHash(), data[0], "")
	cp0.InvokeFail(t, "Unauthorized: task 1 caller is not the participant", "fileSubmissionDispute",
		1, 1, ps[0].ScriptHash(), data[1], "")

	cp1 := c.WithSigners(ps[1])
	cp1.InvokeFail(t, "HashMismatch: task 1", "fileSubmissionDispute",
		1, 1, ps[1].ScriptHash(), data[2], "")
	cp1.Invoke(t, stackitem.Null{}, "fileSubmissionDispute", 1, 1, ps[1].ScriptHash(), data[1], "good data")
	cp1.InvokeFail(t, "AlreadyDisputed: task 1", "fileSubmissionDispute",
		1, 1, ps[1].ScriptHash(), data[1], "")
	require.True(t, getSubmission(t, c, 1, 1).Disputed)

	cp2 := c.WithSigners(ps[2])
	cp2.Invoke(t, stackitem.Null{}, "fileSubmissionDispute", 1, 2, ps[2].ScriptHash(), data[2], "")

	s, err := c.TestInvoke(t, "getSubmissionDispute", 1, 1)
	require.NoError(t, err)
	d := new(exchange.DisputeDispute)
	require.NoError(t, d.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 1, d.Index.Int64())
	require.Equal(t, ps[1].ScriptHash(), d.Filer)

	// Disputed slots are not returned with the deposit.
	advanceTime(t, c, deadline+taskLock)
	cOwner.InvokeFail(t, "AlreadyInactive: task 1", "unlockDeposit", 1, owner.ScriptHash())
	require.EqualValues(t, 20, balanceOf(t, c, escrow))

	cArbiter := c.WithSigners(arbiter)
	cArbiter.Invoke(t, stackitem.Null{}, "resolveSubmissionDispute", 1, 1, true)
	cArbiter.Invoke(t, stackitem.Null{}, "resolveSubmissionDispute", 1, 2, false)
	cArbiter.InvokeFail(t, "AlreadyResolved: task 1", "resolveSubmissionDispute", 1, 1, false)
	cArbiter.InvokeFail(t, "NotFound: task 1 has no dispute", "resolveSubmissionDispute", 1, 0, false)

	require.EqualValues(t, 10, balanceOf(t, c, ps[0].ScriptHash()))
	require.EqualValues(t, 10, balanceOf(t, c, ps[1].ScriptHash()))
	require.EqualValues(t, 0, balanceOf(t, c, ps[2].ScriptHash()))
	require.EqualValues(t, 980, balanceOf(t, c, owner.ScriptHash()))
	require.EqualValues(t, 0, balanceOf(t, c, escrow))

	require.EqualValues(t, 1, reputationOf(t, c, ps[1].ScriptHash()))
	require.EqualValues(t, -1, reputationOf(t, c, ps[2].ScriptHash()))
	require.EqualValues(t, -1, reputationOf(t, c, owner.ScriptHash()))

	require.True(t, getSubmission(t, c, 1, 2).RewardDistributed)

	requireConservation(t, c, owner.ScriptHash(), escrow,
		ps[0].ScriptHash(), ps[1].ScriptHash(), ps[2].ScriptHash())
}
