package exchange_test

import (
	"path"
	"testing"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/native/noderoles"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const exchangePath = "../exchange"

const (
	requestLock = int64(60_000)
	taskLock    = int64(30_000)
)

func newExchangeInvoker(t *testing.T) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	ctr := neotest.CompileFile(t, e.CommitteeHash, exchangePath, path.Join(exchangePath, "config.yml"))
	e.DeployContract(t, ctr, []any{requestLock, taskLock})

	return e.CommitteeInvoker(ctr.Hash)
}

// newUser returns new account with the given token balance.
func newUser(t *testing.T, c *neotest.ContractInvoker, balance int64) neotest.Signer {
	acc := c.NewAccount(t)
	if balance > 0 {
		c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), balance)
	}

	return acc
}

func designateArbiter(t *testing.T, c *neotest.ContractInvoker) neotest.Signer {
	arb := c.NewAccount(t)
	pub := arb.(neotest.SingleSigner).Account().PrivateKey().PublicKey()

	designation := c.CommitteeInvoker(c.NativeHash(t, nativenames.Designation))
	designation.Invoke(t, stackitem.Null{}, "designateAsRole",
		int64(noderoles.Oracle), []any{pub.Bytes()})

	return arb
}

func balanceOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	return testInvokeInt(t, c, "balanceOf", acc)
}

func reputationOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	return testInvokeInt(t, c, "reputation", acc)
}

func testInvokeInt(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) int64 {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func getListing(t *testing.T, c *neotest.ContractInvoker, id int64) *exchange.ListingListing {
	s, err := c.TestInvoke(t, "getListing", id)
	require.NoError(t, err)

	res := new(exchange.ListingListing)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

func getRequest(t *testing.T, c *neotest.ContractInvoker, id int64) *exchange.EscrowRequest {
	s, err := c.TestInvoke(t, "getRequest", id)
	require.NoError(t, err)

	res := new(exchange.EscrowRequest)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

func getSubmission(t *testing.T, c *neotest.ContractInvoker, task, index int64) *exchange.CrowdSubmission {
	s, err := c.TestInvoke(t, "getSubmission", task, index)
	require.NoError(t, err)

	res := new(exchange.CrowdSubmission)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

// now returns timestamp of the latest block. The next invocation is
// executed at now+1.
func now(t *testing.T, c *neotest.ContractInvoker) int64 {
	return int64(c.TopBlock(t).Timestamp)
}

// advanceTime persists an empty block with the given timestamp, so the next
// invocation is executed at ts+1.
func advanceTime(t *testing.T, c *neotest.ContractInvoker, ts int64) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = uint64(ts)
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}

// requireConservation checks that accounts hold all minted tokens.
func requireConservation(t *testing.T, c *neotest.ContractInvoker, accounts ...util.Uint160) {
	var sum int64
	for i := range accounts {
		sum += balanceOf(t, c, accounts[i])
	}
	require.Equal(t, testInvokeInt(t, c, "totalSupply"), sum)
}
