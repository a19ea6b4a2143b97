package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestListingView(t *testing.T) {
	owner := util.Uint160{1}
	participant := util.Uint160{2}

	v := newListingView(&exchange.ListingListing{
		ID:                big.NewInt(3),
		Kind:              big.NewInt(3),
		Owner:             owner,
		Price:             big.NewInt(1050),
		Active:            true,
		Metadata:          "ipfs://task",
		Parent:            big.NewInt(0),
		CommissionRate:    big.NewInt(0),
		Proof:             []byte{},
		PublicKey:         []byte{0x02, 0x03},
		TestDataHash:      []byte{},
		Deadline:          big.NewInt(1_700_000_000_000),
		MaxParticipants:   big.NewInt(5),
		MinReputation:     big.NewInt(-1),
		TotalParticipants: big.NewInt(1),
	})

	require.Equal(t, "data-task", v.Kind)
	require.Equal(t, address.Uint160ToString(owner), v.Owner)
	require.Equal(t, "10.5", v.Price)
	require.Equal(t, "0203", v.PublicKey)
	require.Empty(t, v.Proof)
	require.Equal(t, "2023-11-14T22:13:20Z", v.Deadline)
	require.EqualValues(t, 1, v.Participants)

	s := newSubmissionView(&exchange.CrowdSubmission{
		Participant:  participant,
		ArtifactHash: []byte("hash"),
		Disputed:     true,
	})
	require.Equal(t, address.Uint160ToString(participant), s.Participant)
	require.Equal(t, base58.Encode([]byte("hash")), s.ArtifactHash)
	require.True(t, s.Disputed)

	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, v))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	require.NotContains(t, m, "parent")
	require.NotContains(t, m, "testDataHash")
	require.Equal(t, "ipfs://task", m["metadata"])

	require.Equal(t, "unknown(9)", kindName(9))
	require.Equal(t, "asset", kindName(1))
}

func TestRequestView(t *testing.T) {
	r := &exchange.EscrowRequest{
		ID:            big.NewInt(1),
		Listing:       big.NewInt(2),
		Requester:     util.Uint160{3},
		Amount:        big.NewInt(100),
		Active:        true,
		EncryptionKey: []byte{0xab},
		Artifact:      []byte{},
		Commitment:    []byte{},
		FulfillTime:   big.NewInt(0),
	}

	v := newRequestView(r)
	require.Equal(t, "1", v.Amount)
	require.Equal(t, "ab", v.EncryptionKey)
	require.Empty(t, v.FulfillTime)

	r.Fulfilled = true
	r.Artifact = []byte("link")
	r.FulfillTime = big.NewInt(0)
	v = newRequestView(r)
	require.Equal(t, "1970-01-01T00:00:00Z", v.FulfillTime)
	require.Equal(t, base58.Encode([]byte("link")), v.Artifact)
}

func TestDisputeView(t *testing.T) {
	d := &exchange.DisputeDispute{
		Subject:  big.NewInt(4),
		Index:    big.NewInt(-1),
		Filer:    util.Uint160{5},
		Evidence: []byte("secret"),
	}

	v := newDisputeView(d)
	require.EqualValues(t, 0, v.Index)
	require.Nil(t, v.Result)

	d.Index = big.NewInt(2)
	d.Resolved = true
	v = newDisputeView(d)
	require.EqualValues(t, 2, v.Index)
	require.NotNil(t, v.Result)
	require.False(t, *v.Result)
}
