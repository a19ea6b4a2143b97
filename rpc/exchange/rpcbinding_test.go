package exchange

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestReaderErrors(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetListing(big.NewInt(1))
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make(100500))
	_, err = r.GetListing(big.NewInt(1))
	require.Error(t, err)

	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(1)}))
	_, err = r.GetRequest(big.NewInt(1))
	require.ErrorContains(t, err, "wrong number of structure elements")

	ti.res = &result.Invoke{State: "FAULT", FaultException: `unhandled exception: "NotFound: request 1"`}
	_, err = r.GetRequest(big.NewInt(1))
	require.True(t, IsKind(err, KindNotFound))
}

func TestGetListing(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	owner := util.Uint160{4, 5, 6}
	participant := util.Uint160{7, 8, 9}

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(7),
		stackitem.Make(3),
		stackitem.Make(owner.BytesBE()),
		stackitem.Make(50),
		stackitem.Make(true),
		stackitem.Make("ipfs://task"),
		stackitem.Make(0),
		stackitem.Make(0),
		stackitem.Make([]byte{}),
		stackitem.Make([]byte{0x02, 0x03}),
		stackitem.Make([]byte{}),
		stackitem.Make(1700000000000),
		stackitem.Make(2),
		stackitem.Make(-1),
		stackitem.Make(false),
		stackitem.Make(1),
	}))

	l, err := r.GetListing(big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, "getListing", ti.method)
	require.Equal(t, []any{big.NewInt(7)}, ti.params)

	require.EqualValues(t, 7, l.ID.Int64())
	require.EqualValues(t, 3, l.Kind.Int64())
	require.Equal(t, owner, l.Owner)
	require.True(t, l.Active)
	require.Equal(t, "ipfs://task", l.Metadata)
	require.Equal(t, []byte{0x02, 0x03}, l.PublicKey)
	require.EqualValues(t, -1, l.MinReputation.Int64())
	require.EqualValues(t, 1, l.TotalParticipants.Int64())

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(participant.BytesBE()),
		stackitem.Make([]byte{0xaa}),
		stackitem.Make(false),
		stackitem.Make(true),
	}))

	s, err := r.GetSubmission(big.NewInt(7), big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, "getSubmission", ti.method)
	require.Equal(t, participant, s.Participant)
	require.Equal(t, []byte{0xaa}, s.ArtifactHash)
	require.True(t, s.Disputed)
	require.False(t, s.RewardDistributed)
}

func TestSimpleReaders(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = halt(stackitem.Make(1000))
	b, err := r.BalanceOf(util.Uint160{1})
	require.NoError(t, err)
	require.EqualValues(t, 1000, b.Int64())

	ti.res = halt(stackitem.Make("MCT"))
	s, err := r.Symbol()
	require.NoError(t, err)
	require.Equal(t, "MCT", s)

	escrow := EscrowAccount(4)
	ti.res = halt(stackitem.Make(escrow.BytesBE()))
	h, err := r.EscrowOf(big.NewInt(4))
	require.NoError(t, err)
	require.Equal(t, escrow, h)

	ti.res = halt(stackitem.Make(true))
	ok, err := r.IsArbiter(nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEventsFromApplicationLog(t *testing.T) {
	_, err := RequestCreatedEventsFromApplicationLog(nil)
	require.Error(t, err)

	requester := util.Uint160{1, 1, 1}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(requester.BytesBE()),
						stackitem.Make(EscrowAccount(1).BytesBE()),
						stackitem.Make(100),
					}),
				},
				{
					Name: "RequestCreated",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(1),
						stackitem.Make(requester.BytesBE()),
						stackitem.Make(100),
					}),
				},
				{
					Name: "SubmissionSettled",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(2),
						stackitem.Make(0),
						stackitem.Make(requester.BytesBE()),
						stackitem.Make(10),
						stackitem.Make(true),
					}),
				},
			},
		}},
	}

	events, err := RequestCreatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.EqualValues(t, 1, events[0].Id.Int64())
	require.Equal(t, requester, events[0].Requester)
	require.EqualValues(t, 100, events[0].Amount.Int64())

	transfers, err := TransferEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, EscrowAccount(1), transfers[0].To)

	settled, err := SubmissionSettledEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, settled, 1)
	require.EqualValues(t, 2, settled[0].TaskID.Int64())
	require.Equal(t, requester, settled[0].Recipient)
	require.EqualValues(t, 10, settled[0].Amount.Int64())
	require.True(t, settled[0].Rewarded)
}
