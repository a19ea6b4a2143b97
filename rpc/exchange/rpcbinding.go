// Package exchange contains RPC wrappers for Exchange contract.
package exchange

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CrowdSubmission is a contract-specific crowd.Submission type used by its methods.
type CrowdSubmission struct {
	Participant util.Uint160
	ArtifactHash []byte
	RewardDistributed bool
	Disputed bool
}

// DisputeDispute is a contract-specific dispute.Dispute type used by its methods.
type DisputeDispute struct {
	Subject *big.Int
	Index *big.Int
	Filer util.Uint160
	Evidence []byte
	Description string
	Resolved bool
	Result bool
}

// EscrowRequest is a contract-specific escrow.Request type used by its methods.
type EscrowRequest struct {
	ID *big.Int
	Listing *big.Int
	Requester util.Uint160
	Amount *big.Int
	Active bool
	EncryptionKey []byte
	Fulfilled bool
	Artifact []byte
	Commitment []byte
	FulfillTime *big.Int
	Disputed bool
}

// ListingListing is a contract-specific listing.Listing type used by its methods.
type ListingListing struct {
	ID *big.Int
	Kind *big.Int
	Owner util.Uint160
	Price *big.Int
	Active bool
	Metadata string
	Parent *big.Int
	CommissionRate *big.Int
	Proof []byte
	PublicKey []byte
	TestDataHash []byte
	Deadline *big.Int
	MaxParticipants *big.Int
	MinReputation *big.Int
	Closed bool
	TotalParticipants *big.Int
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
}

// ApprovalEvent represents "Approval" event emitted by the contract.
type ApprovalEvent struct {
	Owner util.Uint160
	Spender util.Uint160
	Amount *big.Int
}

// ReputationChangedEvent represents "ReputationChanged" event emitted by the contract.
type ReputationChangedEvent struct {
	Identity util.Uint160
	Score *big.Int
}

// ListingCreatedEvent represents "ListingCreated" event emitted by the contract.
type ListingCreatedEvent struct {
	Id *big.Int
	Owner util.Uint160
	Kind *big.Int
	Price *big.Int
}

// ListingDeactivatedEvent represents "ListingDeactivated" event emitted by the contract.
type ListingDeactivatedEvent struct {
	Id *big.Int
}

// ListingRepricedEvent represents "ListingRepriced" event emitted by the contract.
type ListingRepricedEvent struct {
	Id *big.Int
	Price *big.Int
}

// RequestCreatedEvent represents "RequestCreated" event emitted by the contract.
type RequestCreatedEvent struct {
	Id *big.Int
	Requester util.Uint160
	Amount *big.Int
}

// RequestCancelledEvent represents "RequestCancelled" event emitted by the contract.
type RequestCancelledEvent struct {
	Id *big.Int
	Requester util.Uint160
	Amount *big.Int
}

// RequestRefundedEvent represents "RequestRefunded" event emitted by the contract.
type RequestRefundedEvent struct {
	Id *big.Int
	Requester util.Uint160
	Amount *big.Int
}

// RequestFulfilledEvent represents "RequestFulfilled" event emitted by the contract.
type RequestFulfilledEvent struct {
	Id *big.Int
	Seller util.Uint160
	Time *big.Int
}

// PaymentReleasedEvent represents "PaymentReleased" event emitted by the contract.
type PaymentReleasedEvent struct {
	Id *big.Int
	Seller util.Uint160
	Payout *big.Int
	Commission *big.Int
}

// TaskCreatedEvent represents "TaskCreated" event emitted by the contract.
type TaskCreatedEvent struct {
	Id *big.Int
	Owner util.Uint160
	Deposit *big.Int
	Deadline *big.Int
}

// SubmissionAddedEvent represents "SubmissionAdded" event emitted by the contract.
type SubmissionAddedEvent struct {
	TaskID *big.Int
	Index *big.Int
	Participant util.Uint160
}

// SubmissionSettledEvent represents "SubmissionSettled" event emitted by the contract.
type SubmissionSettledEvent struct {
	TaskID *big.Int
	Index *big.Int
	Recipient util.Uint160
	Amount *big.Int
	Rewarded bool
}

// TaskEvaluatedEvent represents "TaskEvaluated" event emitted by the contract.
type TaskEvaluatedEvent struct {
	TaskID *big.Int
	Rewarded *big.Int
	Refund *big.Int
}

// DepositUnlockedEvent represents "DepositUnlocked" event emitted by the contract.
type DepositUnlockedEvent struct {
	TaskID *big.Int
	Refund *big.Int
}

// DisputeFiledEvent represents "DisputeFiled" event emitted by the contract.
type DisputeFiledEvent struct {
	Subject *big.Int
	Index *big.Int
	Filer util.Uint160
}

// DisputeResolvedEvent represents "DisputeResolved" event emitted by the contract.
type DisputeResolvedEvent struct {
	Subject *big.Int
	Index *big.Int
	Result bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", account))
}

// CommitmentOf invokes `commitmentOf` method of contract.
func (c *ContractReader) CommitmentOf(key []byte, preimage []byte) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "commitmentOf", key, preimage))
}

// Config invokes `config` method of contract.
func (c *ContractReader) Config(key string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "config", key))
}

// Decimals invokes `decimals` method of contract.
func (c *ContractReader) Decimals() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "decimals"))
}

// EscrowOf invokes `escrowOf` method of contract.
func (c *ContractReader) EscrowOf(id *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "escrowOf", id))
}

// GetListing invokes `getListing` method of contract.
func (c *ContractReader) GetListing(id *big.Int) (*ListingListing, error) {
	return itemToListingListing(unwrap.Item(c.invoker.Call(c.hash, "getListing", id)))
}

// GetRequest invokes `getRequest` method of contract.
func (c *ContractReader) GetRequest(id *big.Int) (*EscrowRequest, error) {
	return itemToEscrowRequest(unwrap.Item(c.invoker.Call(c.hash, "getRequest", id)))
}

// GetRequestDispute invokes `getRequestDispute` method of contract.
func (c *ContractReader) GetRequestDispute(id *big.Int) (*DisputeDispute, error) {
	return itemToDisputeDispute(unwrap.Item(c.invoker.Call(c.hash, "getRequestDispute", id)))
}

// GetSubmission invokes `getSubmission` method of contract.
func (c *ContractReader) GetSubmission(taskID *big.Int, index *big.Int) (*CrowdSubmission, error) {
	return itemToCrowdSubmission(unwrap.Item(c.invoker.Call(c.hash, "getSubmission", taskID, index)))
}

// GetSubmissionDispute invokes `getSubmissionDispute` method of contract.
func (c *ContractReader) GetSubmissionDispute(taskID *big.Int, index *big.Int) (*DisputeDispute, error) {
	return itemToDisputeDispute(unwrap.Item(c.invoker.Call(c.hash, "getSubmissionDispute", taskID, index)))
}

// IsArbiter invokes `isArbiter` method of contract.
func (c *ContractReader) IsArbiter(key *keys.PublicKey) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isArbiter", key))
}

// ListConfig invokes `listConfig` method of contract.
func (c *ContractReader) ListConfig() ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.Call(c.hash, "listConfig"))
}

// ListingsOf invokes `listingsOf` method of contract.
func (c *ContractReader) ListingsOf(owner util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listingsOf", owner))
}

// ListingsOfExpanded is similar to ListingsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListingsOfExpanded(owner util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listingsOf", _numOfIteratorItems, owner))
}

// RequestsOf invokes `requestsOf` method of contract.
func (c *ContractReader) RequestsOf(requester util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "requestsOf", requester))
}

// RequestsOfExpanded is similar to RequestsOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) RequestsOfExpanded(requester util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "requestsOf", _numOfIteratorItems, requester))
}

// Reputation invokes `reputation` method of contract.
func (c *ContractReader) Reputation(identity util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reputation", identity))
}

// Symbol invokes `symbol` method of contract.
func (c *ContractReader) Symbol() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "symbol"))
}

// TaskEscrowOf invokes `taskEscrowOf` method of contract.
func (c *ContractReader) TaskEscrowOf(taskID *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "taskEscrowOf", taskID))
}

// TotalSupply invokes `totalSupply` method of contract.
func (c *ContractReader) TotalSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalSupply"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, amount)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, amount)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, amount)
}

// Award creates a transaction invoking `award` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Award(identity util.Uint160, points *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "award", identity, points)
}

// AwardTransaction creates a transaction invoking `award` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AwardTransaction(identity util.Uint160, points *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "award", identity, points)
}

// AwardUnsigned creates a transaction invoking `award` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AwardUnsigned(identity util.Uint160, points *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "award", nil, identity, points)
}

// CancelRequest creates a transaction invoking `cancelRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelRequest(id *big.Int, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelRequest", id, caller)
}

// CancelRequestTransaction creates a transaction invoking `cancelRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelRequestTransaction(id *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelRequest", id, caller)
}

// CancelRequestUnsigned creates a transaction invoking `cancelRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelRequestUnsigned(id *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelRequest", nil, id, caller)
}

// CreateRequest creates a transaction invoking `createRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateRequest(listingID *big.Int, requester util.Uint160, encryptionKey []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createRequest", listingID, requester, encryptionKey)
}

// CreateRequestTransaction creates a transaction invoking `createRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateRequestTransaction(listingID *big.Int, requester util.Uint160, encryptionKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createRequest", listingID, requester, encryptionKey)
}

// CreateRequestUnsigned creates a transaction invoking `createRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateRequestUnsigned(listingID *big.Int, requester util.Uint160, encryptionKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createRequest", nil, listingID, requester, encryptionKey)
}

// Deactivate creates a transaction invoking `deactivate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deactivate(id *big.Int, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivate", id, caller)
}

// DeactivateTransaction creates a transaction invoking `deactivate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateTransaction(id *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivate", id, caller)
}

// DeactivateUnsigned creates a transaction invoking `deactivate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateUnsigned(id *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivate", nil, id, caller)
}

// Evaluate creates a transaction invoking `evaluate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Evaluate(taskID *big.Int, caller util.Uint160, results []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "evaluate", taskID, caller, results)
}

// EvaluateTransaction creates a transaction invoking `evaluate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EvaluateTransaction(taskID *big.Int, caller util.Uint160, results []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "evaluate", taskID, caller, results)
}

// EvaluateUnsigned creates a transaction invoking `evaluate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EvaluateUnsigned(taskID *big.Int, caller util.Uint160, results []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "evaluate", nil, taskID, caller, results)
}

// FileRequestDispute creates a transaction invoking `fileRequestDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FileRequestDispute(id *big.Int, caller util.Uint160, preimage []byte, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fileRequestDispute", id, caller, preimage, description)
}

// FileRequestDisputeTransaction creates a transaction invoking `fileRequestDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FileRequestDisputeTransaction(id *big.Int, caller util.Uint160, preimage []byte, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fileRequestDispute", id, caller, preimage, description)
}

// FileRequestDisputeUnsigned creates a transaction invoking `fileRequestDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FileRequestDisputeUnsigned(id *big.Int, caller util.Uint160, preimage []byte, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fileRequestDispute", nil, id, caller, preimage, description)
}

// FileSubmissionDispute creates a transaction invoking `fileSubmissionDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FileSubmissionDispute(taskID *big.Int, index *big.Int, caller util.Uint160, preimage []byte, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fileSubmissionDispute", taskID, index, caller, preimage, description)
}

// FileSubmissionDisputeTransaction creates a transaction invoking `fileSubmissionDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FileSubmissionDisputeTransaction(taskID *big.Int, index *big.Int, caller util.Uint160, preimage []byte, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fileSubmissionDispute", taskID, index, caller, preimage, description)
}

// FileSubmissionDisputeUnsigned creates a transaction invoking `fileSubmissionDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FileSubmissionDisputeUnsigned(taskID *big.Int, index *big.Int, caller util.Uint160, preimage []byte, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fileSubmissionDispute", nil, taskID, index, caller, preimage, description)
}

// Fulfill creates a transaction invoking `fulfill` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Fulfill(id *big.Int, caller util.Uint160, artifact []byte, commitment []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fulfill", id, caller, artifact, commitment)
}

// FulfillTransaction creates a transaction invoking `fulfill` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FulfillTransaction(id *big.Int, caller util.Uint160, artifact []byte, commitment []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fulfill", id, caller, artifact, commitment)
}

// FulfillUnsigned creates a transaction invoking `fulfill` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FulfillUnsigned(id *big.Int, caller util.Uint160, artifact []byte, commitment []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fulfill", nil, id, caller, artifact, commitment)
}

// InitDataTask creates a transaction invoking `initDataTask` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitDataTask(owner util.Uint160, payment *big.Int, metadata string, publicKey []byte, deadline *big.Int, maxParticipants *big.Int, minReputation *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initDataTask", owner, payment, metadata, publicKey, deadline, maxParticipants, minReputation)
}

// InitDataTaskTransaction creates a transaction invoking `initDataTask` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitDataTaskTransaction(owner util.Uint160, payment *big.Int, metadata string, publicKey []byte, deadline *big.Int, maxParticipants *big.Int, minReputation *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initDataTask", owner, payment, metadata, publicKey, deadline, maxParticipants, minReputation)
}

// InitDataTaskUnsigned creates a transaction invoking `initDataTask` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitDataTaskUnsigned(owner util.Uint160, payment *big.Int, metadata string, publicKey []byte, deadline *big.Int, maxParticipants *big.Int, minReputation *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initDataTask", nil, owner, payment, metadata, publicKey, deadline, maxParticipants, minReputation)
}

// InitModelTask creates a transaction invoking `initModelTask` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitModelTask(owner util.Uint160, payment *big.Int, metadata string, testDataHash []byte, deadline *big.Int, maxParticipants *big.Int, minReputation *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initModelTask", owner, payment, metadata, testDataHash, deadline, maxParticipants, minReputation)
}

// InitModelTaskTransaction creates a transaction invoking `initModelTask` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitModelTaskTransaction(owner util.Uint160, payment *big.Int, metadata string, testDataHash []byte, deadline *big.Int, maxParticipants *big.Int, minReputation *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initModelTask", owner, payment, metadata, testDataHash, deadline, maxParticipants, minReputation)
}

// InitModelTaskUnsigned creates a transaction invoking `initModelTask` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitModelTaskUnsigned(owner util.Uint160, payment *big.Int, metadata string, testDataHash []byte, deadline *big.Int, maxParticipants *big.Int, minReputation *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initModelTask", nil, owner, payment, metadata, testDataHash, deadline, maxParticipants, minReputation)
}

// ListAsset creates a transaction invoking `listAsset` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ListAsset(owner util.Uint160, price *big.Int, metadata string, parent *big.Int, commissionRate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "listAsset", owner, price, metadata, parent, commissionRate)
}

// ListAssetTransaction creates a transaction invoking `listAsset` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ListAssetTransaction(owner util.Uint160, price *big.Int, metadata string, parent *big.Int, commissionRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "listAsset", owner, price, metadata, parent, commissionRate)
}

// ListAssetUnsigned creates a transaction invoking `listAsset` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ListAssetUnsigned(owner util.Uint160, price *big.Int, metadata string, parent *big.Int, commissionRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "listAsset", nil, owner, price, metadata, parent, commissionRate)
}

// ListItem creates a transaction invoking `listItem` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ListItem(owner util.Uint160, price *big.Int, metadata string, proof []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "listItem", owner, price, metadata, proof)
}

// ListItemTransaction creates a transaction invoking `listItem` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ListItemTransaction(owner util.Uint160, price *big.Int, metadata string, proof []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "listItem", owner, price, metadata, proof)
}

// ListItemUnsigned creates a transaction invoking `listItem` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ListItemUnsigned(owner util.Uint160, price *big.Int, metadata string, proof []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "listItem", nil, owner, price, metadata, proof)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", to, amount)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", to, amount)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, to, amount)
}

// Punish creates a transaction invoking `punish` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Punish(identity util.Uint160, points *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "punish", identity, points)
}

// PunishTransaction creates a transaction invoking `punish` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PunishTransaction(identity util.Uint160, points *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "punish", identity, points)
}

// PunishUnsigned creates a transaction invoking `punish` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PunishUnsigned(identity util.Uint160, points *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "punish", nil, identity, points)
}

// ReleasePayment creates a transaction invoking `releasePayment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleasePayment(id *big.Int, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releasePayment", id, caller)
}

// ReleasePaymentTransaction creates a transaction invoking `releasePayment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleasePaymentTransaction(id *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releasePayment", id, caller)
}

// ReleasePaymentUnsigned creates a transaction invoking `releasePayment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleasePaymentUnsigned(id *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releasePayment", nil, id, caller)
}

// Reprice creates a transaction invoking `reprice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Reprice(id *big.Int, caller util.Uint160, price *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reprice", id, caller, price)
}

// RepriceTransaction creates a transaction invoking `reprice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RepriceTransaction(id *big.Int, caller util.Uint160, price *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reprice", id, caller, price)
}

// RepriceUnsigned creates a transaction invoking `reprice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RepriceUnsigned(id *big.Int, caller util.Uint160, price *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reprice", nil, id, caller, price)
}

// ResolveRequestDispute creates a transaction invoking `resolveRequestDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveRequestDispute(id *big.Int, favor bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveRequestDispute", id, favor)
}

// ResolveRequestDisputeTransaction creates a transaction invoking `resolveRequestDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveRequestDisputeTransaction(id *big.Int, favor bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveRequestDispute", id, favor)
}

// ResolveRequestDisputeUnsigned creates a transaction invoking `resolveRequestDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveRequestDisputeUnsigned(id *big.Int, favor bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveRequestDispute", nil, id, favor)
}

// ResolveSubmissionDispute creates a transaction invoking `resolveSubmissionDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveSubmissionDispute(taskID *big.Int, index *big.Int, favor bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveSubmissionDispute", taskID, index, favor)
}

// ResolveSubmissionDisputeTransaction creates a transaction invoking `resolveSubmissionDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveSubmissionDisputeTransaction(taskID *big.Int, index *big.Int, favor bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveSubmissionDispute", taskID, index, favor)
}

// ResolveSubmissionDisputeUnsigned creates a transaction invoking `resolveSubmissionDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveSubmissionDisputeUnsigned(taskID *big.Int, index *big.Int, favor bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveSubmissionDispute", nil, taskID, index, favor)
}

// SetConfig creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetConfig(key string, val *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setConfig", key, val)
}

// SetConfigTransaction creates a transaction invoking `setConfig` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetConfigTransaction(key string, val *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setConfig", key, val)
}

// SetConfigUnsigned creates a transaction invoking `setConfig` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetConfigUnsigned(key string, val *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setConfig", nil, key, val)
}

// Submit creates a transaction invoking `submit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Submit(taskID *big.Int, participant util.Uint160, artifactHash []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submit", taskID, participant, artifactHash)
}

// SubmitTransaction creates a transaction invoking `submit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitTransaction(taskID *big.Int, participant util.Uint160, artifactHash []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submit", taskID, participant, artifactHash)
}

// SubmitUnsigned creates a transaction invoking `submit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitUnsigned(taskID *big.Int, participant util.Uint160, artifactHash []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submit", nil, taskID, participant, artifactHash)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, amount)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, amount)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, amount)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount)
}

// UnlockDeposit creates a transaction invoking `unlockDeposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UnlockDeposit(taskID *big.Int, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unlockDeposit", taskID, caller)
}

// UnlockDepositTransaction creates a transaction invoking `unlockDeposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnlockDepositTransaction(taskID *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unlockDeposit", taskID, caller)
}

// UnlockDepositUnsigned creates a transaction invoking `unlockDeposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnlockDepositUnsigned(taskID *big.Int, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unlockDeposit", nil, taskID, caller)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToCrowdSubmission converts stack item into *CrowdSubmission.
func itemToCrowdSubmission(item stackitem.Item, err error) (*CrowdSubmission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CrowdSubmission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CrowdSubmission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CrowdSubmission) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	index++
	res.ArtifactHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ArtifactHash: %w", err)
	}

	index++
	res.RewardDistributed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field RewardDistributed: %w", err)
	}

	index++
	res.Disputed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Disputed: %w", err)
	}

	return nil
}

// itemToDisputeDispute converts stack item into *DisputeDispute.
func itemToDisputeDispute(item stackitem.Item, err error) (*DisputeDispute, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DisputeDispute)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DisputeDispute from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DisputeDispute) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Subject, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Subject: %w", err)
	}

	index++
	res.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	res.Filer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Filer: %w", err)
	}

	index++
	res.Evidence, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Evidence: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Resolved, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Resolved: %w", err)
	}

	index++
	res.Result, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Result: %w", err)
	}

	return nil
}

// itemToEscrowRequest converts stack item into *EscrowRequest.
func itemToEscrowRequest(item stackitem.Item, err error) (*EscrowRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(EscrowRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of EscrowRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *EscrowRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Listing, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Listing: %w", err)
	}

	index++
	res.Requester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.EncryptionKey, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field EncryptionKey: %w", err)
	}

	index++
	res.Fulfilled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Fulfilled: %w", err)
	}

	index++
	res.Artifact, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Artifact: %w", err)
	}

	index++
	res.Commitment, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Commitment: %w", err)
	}

	index++
	res.FulfillTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FulfillTime: %w", err)
	}

	index++
	res.Disputed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Disputed: %w", err)
	}

	return nil
}

// itemToListingListing converts stack item into *ListingListing.
func itemToListingListing(item stackitem.Item, err error) (*ListingListing, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ListingListing)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ListingListing from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ListingListing) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 16 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.Metadata, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Metadata: %w", err)
	}

	index++
	res.Parent, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Parent: %w", err)
	}

	index++
	res.CommissionRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CommissionRate: %w", err)
	}

	index++
	res.Proof, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Proof: %w", err)
	}

	index++
	res.PublicKey, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field PublicKey: %w", err)
	}

	index++
	res.TestDataHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TestDataHash: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	res.MaxParticipants, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxParticipants: %w", err)
	}

	index++
	res.MinReputation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinReputation: %w", err)
	}

	index++
	res.Closed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Closed: %w", err)
	}

	index++
	res.TotalParticipants, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalParticipants: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ApprovalEventsFromApplicationLog retrieves a set of all emitted events
// with "Approval" name from the provided [result.ApplicationLog].
func ApprovalEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ApprovalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Approval" {
				continue
			}
			event := new(ApprovalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ApprovalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ApprovalEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Spender, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Spender: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReputationChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationChanged" name from the provided [result.ApplicationLog].
func ReputationChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationChanged" {
				continue
			}
			event := new(ReputationChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Identity, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Identity: %w", err)
	}

	index++
	e.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	return nil
}

// ListingCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ListingCreated" name from the provided [result.ApplicationLog].
func ListingCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ListingCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ListingCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ListingCreated" {
				continue
			}
			event := new(ListingCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ListingCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ListingCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ListingCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Kind, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// ListingDeactivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ListingDeactivated" name from the provided [result.ApplicationLog].
func ListingDeactivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ListingDeactivatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ListingDeactivatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ListingDeactivated" {
				continue
			}
			event := new(ListingDeactivatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ListingDeactivatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ListingDeactivatedEvent or
// returns an error if it's not possible to do to so.
func (e *ListingDeactivatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	return nil
}

// ListingRepricedEventsFromApplicationLog retrieves a set of all emitted events
// with "ListingRepriced" name from the provided [result.ApplicationLog].
func ListingRepricedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ListingRepricedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ListingRepricedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ListingRepriced" {
				continue
			}
			event := new(ListingRepricedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ListingRepricedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ListingRepricedEvent or
// returns an error if it's not possible to do to so.
func (e *ListingRepricedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// RequestCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestCreated" name from the provided [result.ApplicationLog].
func RequestCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestCreated" {
				continue
			}
			event := new(RequestCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *RequestCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Requester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RequestCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestCancelled" name from the provided [result.ApplicationLog].
func RequestCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestCancelled" {
				continue
			}
			event := new(RequestCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *RequestCancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Requester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RequestRefundedEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestRefunded" name from the provided [result.ApplicationLog].
func RequestRefundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestRefundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestRefundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestRefunded" {
				continue
			}
			event := new(RequestRefundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestRefundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestRefundedEvent or
// returns an error if it's not possible to do to so.
func (e *RequestRefundedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Requester, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Requester: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RequestFulfilledEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestFulfilled" name from the provided [result.ApplicationLog].
func RequestFulfilledEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestFulfilledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestFulfilledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestFulfilled" {
				continue
			}
			event := new(RequestFulfilledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestFulfilledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestFulfilledEvent or
// returns an error if it's not possible to do to so.
func (e *RequestFulfilledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	e.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	return nil
}

// PaymentReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "PaymentReleased" name from the provided [result.ApplicationLog].
func PaymentReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PaymentReleasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PaymentReleasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PaymentReleased" {
				continue
			}
			event := new(PaymentReleasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PaymentReleasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PaymentReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *PaymentReleasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	e.Payout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payout: %w", err)
	}

	index++
	e.Commission, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Commission: %w", err)
	}

	return nil
}

// TaskCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TaskCreated" name from the provided [result.ApplicationLog].
func TaskCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaskCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaskCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaskCreated" {
				continue
			}
			event := new(TaskCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaskCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaskCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *TaskCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Id, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Id: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Deposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deposit: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	return nil
}

// SubmissionAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionAdded" name from the provided [result.ApplicationLog].
func SubmissionAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionAdded" {
				continue
			}
			event := new(SubmissionAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionAddedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	return nil
}

// SubmissionSettledEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionSettled" name from the provided [result.ApplicationLog].
func SubmissionSettledEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionSettledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionSettledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionSettled" {
				continue
			}
			event := new(SubmissionSettledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionSettledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionSettledEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionSettledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Rewarded, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Rewarded: %w", err)
	}

	return nil
}

// TaskEvaluatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TaskEvaluated" name from the provided [result.ApplicationLog].
func TaskEvaluatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TaskEvaluatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TaskEvaluatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TaskEvaluated" {
				continue
			}
			event := new(TaskEvaluatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TaskEvaluatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TaskEvaluatedEvent or
// returns an error if it's not possible to do to so.
func (e *TaskEvaluatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Rewarded, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rewarded: %w", err)
	}

	index++
	e.Refund, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Refund: %w", err)
	}

	return nil
}

// DepositUnlockedEventsFromApplicationLog retrieves a set of all emitted events
// with "DepositUnlocked" name from the provided [result.ApplicationLog].
func DepositUnlockedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositUnlockedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositUnlockedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DepositUnlocked" {
				continue
			}
			event := new(DepositUnlockedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositUnlockedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositUnlockedEvent or
// returns an error if it's not possible to do to so.
func (e *DepositUnlockedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TaskID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TaskID: %w", err)
	}

	index++
	e.Refund, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Refund: %w", err)
	}

	return nil
}

// DisputeFiledEventsFromApplicationLog retrieves a set of all emitted events
// with "DisputeFiled" name from the provided [result.ApplicationLog].
func DisputeFiledEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisputeFiledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisputeFiledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DisputeFiled" {
				continue
			}
			event := new(DisputeFiledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisputeFiledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisputeFiledEvent or
// returns an error if it's not possible to do to so.
func (e *DisputeFiledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Subject, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Subject: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Filer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Filer: %w", err)
	}

	return nil
}

// DisputeResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "DisputeResolved" name from the provided [result.ApplicationLog].
func DisputeResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisputeResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisputeResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DisputeResolved" {
				continue
			}
			event := new(DisputeResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisputeResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisputeResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *DisputeResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Subject, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Subject: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Result, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Result: %w", err)
	}

	return nil
}
