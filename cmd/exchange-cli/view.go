package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
)

// tokenDecimals is a Decimals value of the exchange token.
const tokenDecimals = 2

var kindNames = map[int64]string{
	exchangeconst.KindAsset:     "asset",
	exchangeconst.KindItem:      "item",
	exchangeconst.KindDataTask:  "data-task",
	exchangeconst.KindModelTask: "model-task",
}

// Byte strings are printed in base58 (artifacts, hashes) or hex (keys).
type (
	listingView struct {
		ID              int64  `json:"id"`
		Kind            string `json:"kind"`
		Owner           string `json:"owner"`
		Price           string `json:"price"`
		Active          bool   `json:"active"`
		Metadata        string `json:"metadata"`
		Parent          int64  `json:"parent,omitempty"`
		CommissionRate  int64  `json:"commissionRate,omitempty"`
		Proof           string `json:"proof,omitempty"`
		PublicKey       string `json:"publicKey,omitempty"`
		TestDataHash    string `json:"testDataHash,omitempty"`
		Deadline        string `json:"deadline,omitempty"`
		MaxParticipants int64  `json:"maxParticipants,omitempty"`
		MinReputation   int64  `json:"minReputation,omitempty"`
		Closed          bool   `json:"closed,omitempty"`
		Participants    int64  `json:"participants,omitempty"`
	}

	submissionView struct {
		Participant       string `json:"participant"`
		ArtifactHash      string `json:"artifactHash"`
		RewardDistributed bool   `json:"rewardDistributed"`
		Disputed          bool   `json:"disputed"`
	}

	requestView struct {
		ID            int64  `json:"id"`
		Listing       int64  `json:"listing"`
		Requester     string `json:"requester"`
		Amount        string `json:"amount"`
		Active        bool   `json:"active"`
		EncryptionKey string `json:"encryptionKey,omitempty"`
		Fulfilled     bool   `json:"fulfilled"`
		Artifact      string `json:"artifact,omitempty"`
		Commitment    string `json:"commitment,omitempty"`
		FulfillTime   string `json:"fulfillTime,omitempty"`
		Disputed      bool   `json:"disputed"`
	}

	disputeView struct {
		Subject     int64  `json:"subject"`
		Index       int64  `json:"index,omitempty"`
		Filer       string `json:"filer"`
		Evidence    string `json:"evidence"`
		Description string `json:"description,omitempty"`
		Resolved    bool   `json:"resolved"`
		Result      *bool  `json:"result,omitempty"`
	}
)

func newListingView(l *exchange.ListingListing) listingView {
	v := listingView{
		ID:              l.ID.Int64(),
		Kind:            kindName(l.Kind.Int64()),
		Owner:           address.Uint160ToString(l.Owner),
		Price:           formatAmount(l.Price),
		Active:          l.Active,
		Metadata:        l.Metadata,
		Parent:          l.Parent.Int64(),
		CommissionRate:  l.CommissionRate.Int64(),
		Proof:           base58.Encode(l.Proof),
		PublicKey:       hex.EncodeToString(l.PublicKey),
		TestDataHash:    base58.Encode(l.TestDataHash),
		MaxParticipants: l.MaxParticipants.Int64(),
		MinReputation:   l.MinReputation.Int64(),
		Closed:          l.Closed,
		Participants:    l.TotalParticipants.Int64(),
	}

	if l.Deadline.Sign() > 0 {
		v.Deadline = formatTime(l.Deadline)
	}

	return v
}

func newSubmissionView(s *exchange.CrowdSubmission) submissionView {
	return submissionView{
		Participant:       address.Uint160ToString(s.Participant),
		ArtifactHash:      base58.Encode(s.ArtifactHash),
		RewardDistributed: s.RewardDistributed,
		Disputed:          s.Disputed,
	}
}

func newRequestView(r *exchange.EscrowRequest) requestView {
	v := requestView{
		ID:            r.ID.Int64(),
		Listing:       r.Listing.Int64(),
		Requester:     address.Uint160ToString(r.Requester),
		Amount:        formatAmount(r.Amount),
		Active:        r.Active,
		EncryptionKey: hex.EncodeToString(r.EncryptionKey),
		Fulfilled:     r.Fulfilled,
		Artifact:      base58.Encode(r.Artifact),
		Commitment:    base58.Encode(r.Commitment),
		Disputed:      r.Disputed,
	}

	if r.Fulfilled {
		v.FulfillTime = formatTime(r.FulfillTime)
	}

	return v
}

func newDisputeView(d *exchange.DisputeDispute) disputeView {
	v := disputeView{
		Subject:     d.Subject.Int64(),
		Index:       d.Index.Int64(),
		Filer:       address.Uint160ToString(d.Filer),
		Evidence:    base58.Encode(d.Evidence),
		Description: d.Description,
		Resolved:    d.Resolved,
	}

	if v.Index == exchangeconst.NoIndex {
		v.Index = 0
	}

	if d.Resolved {
		res := d.Result
		v.Result = &res
	}

	return v
}

func kindName(k int64) string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", k)
}

func formatAmount(v *big.Int) string {
	return fixedn.ToString(v, tokenDecimals)
}

// formatTime formats block timestamp in milliseconds.
func formatTime(ms *big.Int) string {
	return time.UnixMilli(ms.Int64()).UTC().Format(time.RFC3339)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
