package exchange

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts/exchange/crowd"
	"github.com/metacrowd/exchange-contract/contracts/exchange/dispute"
	"github.com/metacrowd/exchange-contract/contracts/exchange/escrow"
	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/metacrowd/exchange-contract/contracts/exchange/listing"
	"github.com/metacrowd/exchange-contract/contracts/exchange/reputation"
	"github.com/metacrowd/exchange-contract/contracts/exchange/token"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// _deploy stores initial lock durations. Optional data is
// `[requestLockDuration, taskLockDuration]` in milliseconds.
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	requestLock := exchangeconst.DefaultRequestLockDuration
	taskLock := exchangeconst.DefaultTaskLockDuration
	if data != nil {
		args := data.([]any)
		if len(args) != 2 {
			common.Abort(common.ErrInvalidArgument, "deploy data must be [requestLock, taskLock]")
		}
		requestLock = args[0].(int)
		taskLock = args[1].(int)
		if requestLock < 0 || taskLock < 0 {
			common.Abort(common.ErrInvalidArgument, "negative lock duration")
		}
	}

	setConfig(ctx, exchangeconst.RequestLockDurationKey, requestLock)
	setConfig(ctx, exchangeconst.TaskLockDurationKey, taskLock)

	runtime.Log("exchange contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	common.CheckCommitteeWitness()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("exchange contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Symbol returns exchange token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals returns precision of exchange token balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply returns amount of tokens minted so far.
func TotalSupply() int {
	return token.TotalSupply(storage.GetReadOnlyContext())
}

// BalanceOf returns token balance of the account. Escrow accounts are
// regular accounts, see EscrowOf and TaskEscrowOf.
func BalanceOf(account interop.Hash160) int {
	return token.BalanceOf(storage.GetReadOnlyContext(), account)
}

// Allowance returns amount of owner tokens the spender may transfer.
func Allowance(owner, spender interop.Hash160) int {
	return token.Allowance(storage.GetReadOnlyContext(), owner, spender)
}

// Mint issues amount of new tokens to the account. It can be invoked only
// by committee.
//
// It produces Transfer notification with null sender.
func Mint(to interop.Hash160, amount int) {
	common.CheckCommitteeWitness()
	token.Mint(storage.GetContext(), to, amount)
}

// Transfer moves tokens between accounts. It must be witnessed by the
// sender.
func Transfer(from, to interop.Hash160, amount int) {
	token.Transfer(storage.GetContext(), from, to, amount)
}

// TransferFrom moves tokens of the owner on behalf of the spender within
// the allowance. It must be witnessed by the spender.
func TransferFrom(spender, from, to interop.Hash160, amount int) {
	token.TransferFrom(storage.GetContext(), spender, from, to, amount)
}

// Approve sets amount of owner tokens the spender may transfer. It must be
// witnessed by the owner.
func Approve(owner, spender interop.Hash160, amount int) {
	token.Approve(storage.GetContext(), owner, spender, amount)
}

// Reputation returns reputation score of the identity.
func Reputation(identity interop.Hash160) int {
	return reputation.Get(storage.GetReadOnlyContext(), identity)
}

// Award increases reputation score of the identity. It can be invoked only
// by committee and returns the new score.
func Award(identity interop.Hash160, points int) int {
	common.CheckCommitteeWitness()
	return reputation.Award(storage.GetContext(), identity, points)
}

// Punish decreases reputation score of the identity. It can be invoked only
// by committee and returns the new score.
func Punish(identity interop.Hash160, points int) int {
	common.CheckCommitteeWitness()
	return reputation.Punish(storage.GetContext(), identity, points)
}

// ListAsset creates digital asset listing and returns its id. Parent is an
// id of the asset receiving commission from sales of this one or 0,
// commission rate is a share (in basis points) of child asset sales paid to
// this one.
func ListAsset(owner interop.Hash160, price int, metadata string, parent, commissionRate int) int {
	ctx := storage.GetContext()
	return listing.Create(ctx, listing.NewAsset(ctx, owner, price, metadata, parent, commissionRate))
}

// ListItem creates marketplace item listing and returns its id.
func ListItem(owner interop.Hash160, price int, metadata string, proof []byte) int {
	return listing.Create(storage.GetContext(), listing.NewItem(owner, price, metadata, proof))
}

// Deactivate permanently deactivates the listing. It must be invoked by the
// owner.
func Deactivate(id int, caller interop.Hash160) {
	listing.Deactivate(storage.GetContext(), id, caller)
}

// Reprice changes price of the active asset or item listing. It must be
// invoked by the owner.
func Reprice(id int, caller interop.Hash160, price int) {
	listing.Reprice(storage.GetContext(), id, caller, price)
}

// GetListing returns listing by id.
func GetListing(id int) listing.Listing {
	return listing.Get(storage.GetReadOnlyContext(), id)
}

// ListingsOf returns iterator over ids of the owner listings.
func ListingsOf(owner interop.Hash160) iterator.Iterator {
	return listing.ListOf(storage.GetReadOnlyContext(), owner)
}

// CreateRequest locks listing price of the requester in escrow and returns
// new request id. Encryption key is used by the seller to encrypt delivery
// and by disputes to check it.
func CreateRequest(listingID int, requester interop.Hash160, encryptionKey []byte) int {
	return escrow.Create(storage.GetContext(), listingID, requester, encryptionKey)
}

// CancelRequest refunds unfulfilled request.
func CancelRequest(id int, caller interop.Hash160) {
	escrow.Cancel(storage.GetContext(), id, caller)
}

// Fulfill attaches seller delivery and commitment to its content to the
// request.
func Fulfill(id int, caller interop.Hash160, artifact, commitment []byte) {
	escrow.Fulfill(storage.GetContext(), id, caller, artifact, commitment)
}

// ReleasePayment pays escrowed amount to the seller. The requester may do it
// at any moment, the seller after the request lock duration since
// fulfillment.
func ReleasePayment(id int, caller interop.Hash160) {
	ctx := storage.GetContext()
	escrow.Release(ctx, id, caller, getConfig(ctx, exchangeconst.RequestLockDurationKey))
}

// GetRequest returns request by id.
func GetRequest(id int) escrow.Request {
	return escrow.Get(storage.GetReadOnlyContext(), id)
}

// RequestsOf returns iterator over ids of the requester requests.
func RequestsOf(requester interop.Hash160) iterator.Iterator {
	return escrow.ListOf(storage.GetReadOnlyContext(), requester)
}

// EscrowOf returns escrow account of the request.
func EscrowOf(id int) interop.Hash160 {
	return escrow.AccountOf(id)
}

// InitDataTask creates data collection task, locks payment*maxParticipants
// of the owner and returns task id.
func InitDataTask(owner interop.Hash160, payment int, metadata string, publicKey []byte,
	deadline, maxParticipants, minReputation int) int {
	return crowd.Init(storage.GetContext(), listing.NewTask(listing.DataTask, owner, payment, metadata,
		publicKey, deadline, maxParticipants, minReputation))
}

// InitModelTask creates model evaluation task, locks
// payment*maxParticipants of the owner and returns task id.
func InitModelTask(owner interop.Hash160, payment int, metadata string, testDataHash []byte,
	deadline, maxParticipants, minReputation int) int {
	return crowd.Init(storage.GetContext(), listing.NewTask(listing.ModelTask, owner, payment, metadata,
		testDataHash, deadline, maxParticipants, minReputation))
}

// Submit adds submission to the task and returns its index.
func Submit(taskID int, participant interop.Hash160, artifactHash []byte) int {
	return crowd.Submit(storage.GetContext(), taskID, participant, artifactHash)
}

// Evaluate pays accepted submissions and closes the task. Results are
// matched to submissions by index.
func Evaluate(taskID int, caller interop.Hash160, results []bool) {
	crowd.Evaluate(storage.GetContext(), taskID, caller, results)
}

// UnlockDeposit returns the rest of the task deposit to the owner after the
// task lock duration since the deadline.
func UnlockDeposit(taskID int, caller interop.Hash160) {
	ctx := storage.GetContext()
	crowd.UnlockDeposit(ctx, taskID, caller, getConfig(ctx, exchangeconst.TaskLockDurationKey))
}

// GetSubmission returns index-th submission of the task.
func GetSubmission(taskID, index int) crowd.Submission {
	return crowd.GetSubmission(storage.GetReadOnlyContext(), taskID, index)
}

// TaskEscrowOf returns escrow account of the task.
func TaskEscrowOf(taskID int) interop.Hash160 {
	return crowd.AccountOf(taskID)
}

// FileRequestDispute opens dispute of the fulfilled request. Preimage must
// match the commitment attached on fulfillment.
func FileRequestDispute(id int, caller interop.Hash160, preimage []byte, description string) {
	dispute.FileRequest(storage.GetContext(), id, caller, preimage, description)
}

// FileSubmissionDispute opens dispute of the task submission. Preimage must
// match the submitted artifact hash.
func FileSubmissionDispute(taskID, index int, caller interop.Hash160, preimage []byte, description string) {
	dispute.FileSubmission(storage.GetContext(), taskID, index, caller, preimage, description)
}

// ResolveRequestDispute settles disputed request. It must be witnessed by
// an arbiter, see IsArbiter.
func ResolveRequestDispute(id int, favor bool) {
	dispute.ResolveRequest(storage.GetContext(), id, favor)
}

// ResolveSubmissionDispute settles disputed task submission. It must be
// witnessed by an arbiter, see IsArbiter.
func ResolveSubmissionDispute(taskID, index int, favor bool) {
	dispute.ResolveSubmission(storage.GetContext(), taskID, index, favor)
}

// GetRequestDispute returns dispute of the request.
func GetRequestDispute(id int) dispute.Dispute {
	return dispute.GetRequest(storage.GetReadOnlyContext(), id)
}

// GetSubmissionDispute returns dispute of the task submission.
func GetSubmissionDispute(taskID, index int) dispute.Dispute {
	return dispute.GetSubmission(storage.GetReadOnlyContext(), taskID, index)
}

// CommitmentOf returns commitment of the preimage bound to the public key
// as it is checked by disputes.
func CommitmentOf(key, preimage []byte) []byte {
	return dispute.Commitment(key, preimage)
}

// IsArbiter checks whether key is designated to resolve disputes. Arbiters
// are nodes designated for the Oracle role.
func IsArbiter(key interop.PublicKey) bool {
	return common.IsArbiter(key)
}
