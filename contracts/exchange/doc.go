/*
Package exchange implements the Exchange contract.

Exchange contract keeps a fungible token ledger and trades digital assets,
marketplace items and crowd tasks for these tokens. Buyers lock listing
price in a per-request escrow account, sellers deliver an artifact with a
commitment to its content, and the payment is released to the seller by the
buyer or, after the request lock duration, by the seller itself. Crowd tasks
pre-fund payment of every participant slot and pay accepted submissions on
evaluation. Designated arbiters (nodes designated for the Oracle role)
resolve disputes of requests and submissions, settling escrowed funds and
changing reputation of both sides.

Every failure aborts the invocation with a message prefixed with its kind,
e.g. `NotFound: listing 5`.

# Contract notifications

Transfer notification. Produced on every token movement including escrow
locks and payouts. Sender is null for minted tokens.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. Produced when allowance is set or spent.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

ReputationChanged notification. Contains the new score.

	ReputationChanged:
	  - name: identity
	    type: Hash160
	  - name: score
	    type: Integer

ListingCreated, ListingDeactivated and ListingRepriced notifications.

	ListingCreated:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: kind
	    type: Integer
	  - name: price
	    type: Integer
	ListingDeactivated:
	  - name: id
	    type: Integer
	ListingRepriced:
	  - name: id
	    type: Integer
	  - name: price
	    type: Integer

Request notifications. RequestRefunded is produced whenever the escrow
returns to the requester, on cancellation or a dispute resolved in the
requester's favor. PaymentReleased contains amount paid to the seller and
commission paid to the owner of the parent asset.

	RequestCreated:
	  - name: id
	    type: Integer
	  - name: requester
	    type: Hash160
	  - name: amount
	    type: Integer
	RequestCancelled:
	  - name: id
	    type: Integer
	  - name: requester
	    type: Hash160
	  - name: amount
	    type: Integer
	RequestRefunded:
	  - name: id
	    type: Integer
	  - name: requester
	    type: Hash160
	  - name: amount
	    type: Integer
	RequestFulfilled:
	  - name: id
	    type: Integer
	  - name: seller
	    type: Hash160
	  - name: time
	    type: Integer
	PaymentReleased:
	  - name: id
	    type: Integer
	  - name: seller
	    type: Hash160
	  - name: payout
	    type: Integer
	  - name: commission
	    type: Integer

Crowd task notifications. SubmissionSettled is produced for every payment
of a submission slot: to the participant on acceptance (rewarded is true) or
to the task owner when a dispute is resolved against the participant.
TaskEvaluated and DepositUnlocked contain the total refunded to the owner.

	TaskCreated:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: deposit
	    type: Integer
	  - name: deadline
	    type: Integer
	SubmissionAdded:
	  - name: taskID
	    type: Integer
	  - name: index
	    type: Integer
	  - name: participant
	    type: Hash160
	SubmissionSettled:
	  - name: taskID
	    type: Integer
	  - name: index
	    type: Integer
	  - name: recipient
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: rewarded
	    type: Boolean
	TaskEvaluated:
	  - name: taskID
	    type: Integer
	  - name: rewarded
	    type: Integer
	  - name: refund
	    type: Integer
	DepositUnlocked:
	  - name: taskID
	    type: Integer
	  - name: refund
	    type: Integer

Dispute notifications. Index is -1 for request disputes.

	DisputeFiled:
	  - name: subject
	    type: Integer
	  - name: index
	    type: Integer
	  - name: filer
	    type: Hash160
	DisputeResolved:
	  - name: subject
	    type: Integer
	  - name: index
	    type: Integer
	  - name: result
	    type: Boolean

# Contract storage scheme

Numbers in keys are decimal strings, composite ids are separated by ':'.

	| Key                          | Value                    |
	|------------------------------|--------------------------|
	| `supply`                     | total minted amount      |
	| 'a' + account                | balance                  |
	| 'w' + owner + spender        | allowance                |
	| 'r' + identity               | reputation score         |
	| `listingCounter`             | last listing id          |
	| 'l' + id + ':'               | serialized Listing       |
	| 'p' + id + ':' + index       | serialized task Submission |
	| 'o' + owner + id             | listing id               |
	| `requestCounter`             | last request id          |
	| 'q' + id + ':'               | serialized Request       |
	| 'b' + requester + id         | request id               |
	| 'd' + id + ':'               | serialized request Dispute |
	| 'D' + id + ':' + index       | serialized submission Dispute |
	| `config` + key               | configuration value      |
*/
package exchange
