/*
Package token implements the fungible token ledger of the exchange contract.

Balances are stored under `a+account` keys, allowances under
`w+owner+spender` keys. Every fund movement of the exchange, including
escrow locks and releases, goes through Move, so the sum of all balances
always equals the total minted supply. Accounts with zero balance are
removed from storage.
*/
package token

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	// Symbol is a ticker of the exchange token.
	Symbol = "MCT"
	// Decimals is a precision of the exchange token.
	Decimals = 2

	supplyKey       = "supply"
	accountPrefix   = 'a'
	allowancePrefix = 'w'
)

// TotalSupply returns amount of tokens minted so far.
func TotalSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, supplyKey)
	if supply == nil {
		return 0
	}

	return supply.(int)
}

// BalanceOf returns token balance of the account.
func BalanceOf(ctx storage.Context, account interop.Hash160) int {
	balance := storage.Get(ctx, accountKey(account))
	if balance == nil {
		return 0
	}

	return balance.(int)
}

// Allowance returns amount of owner tokens the spender is allowed to
// transfer.
func Allowance(ctx storage.Context, owner, spender interop.Hash160) int {
	allowance := storage.Get(ctx, allowanceKey(owner, spender))
	if allowance == nil {
		return 0
	}

	return allowance.(int)
}

// Mint credits amount of new tokens to the account and increases total
// supply. Authorization is up to the caller.
func Mint(ctx storage.Context, to interop.Hash160, amount int) {
	checkAddress(to)
	if amount <= 0 {
		common.Abort(common.ErrInvalidArgument, "mint amount must be positive")
	}

	supply := common.SafeAdd(TotalSupply(ctx), amount)
	balance := common.SafeAdd(BalanceOf(ctx, to), amount)

	storage.Put(ctx, supplyKey, supply)
	putBalance(ctx, to, balance)

	var from interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
	runtime.Log("tokens were minted")
}

// Transfer moves amount of tokens between accounts. It must be witnessed
// by the sender.
func Transfer(ctx storage.Context, from, to interop.Hash160, amount int) {
	checkAddress(from)
	common.CheckWitness(from)

	Move(ctx, from, to, amount)
}

// TransferFrom moves amount of tokens from the owner account on behalf of
// the spender. It must be witnessed by the spender and is limited by the
// allowance, which is decreased by amount.
func TransferFrom(ctx storage.Context, spender, from, to interop.Hash160, amount int) {
	checkAddress(spender)
	checkAddress(from)
	common.CheckWitness(spender)
	common.CheckAmount(amount)

	allowance := Allowance(ctx, from, spender)
	if allowance < amount {
		common.Abort(common.ErrInsufficientAllowance,
			"spender is allowed to transfer less than requested amount")
	}

	Move(ctx, from, to, amount)

	storage.Put(ctx, allowanceKey(from, spender), allowance-amount)
	runtime.Notify("Approval", from, spender, allowance-amount)
}

// Approve allows spender to transfer up to amount of owner tokens. It must
// be witnessed by the owner. Previous allowance is overwritten.
func Approve(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	checkAddress(owner)
	checkAddress(spender)
	common.CheckWitness(owner)
	common.CheckAmount(amount)

	storage.Put(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

// Move moves amount of tokens without any witness checks. It is the only
// balance writer of the contract: escrow locks, refunds and payouts use it
// directly.
func Move(ctx storage.Context, from, to interop.Hash160, amount int) {
	checkAddress(from)
	checkAddress(to)
	common.CheckAmount(amount)

	balance := BalanceOf(ctx, from)
	if balance < amount {
		common.Abort(common.ErrInsufficientFunds,
			"balance of "+std.Base58Encode(from)+" is less than requested amount")
	}

	if amount == 0 || from.Equals(to) {
		return
	}

	received := common.SafeAdd(BalanceOf(ctx, to), amount)

	putBalance(ctx, from, balance-amount)
	putBalance(ctx, to, received)

	runtime.Notify("Transfer", from, to, amount)
}

// putBalance stores the balance, empty accounts are removed.
func putBalance(ctx storage.Context, account interop.Hash160, balance int) {
	if balance == 0 {
		storage.Delete(ctx, accountKey(account))
		return
	}

	storage.Put(ctx, accountKey(account), balance)
}

func checkAddress(addr interop.Hash160) {
	if len(addr) != interop.Hash160Len {
		common.Abort(common.ErrInvalidArgument, "invalid address")
	}
}

func accountKey(account interop.Hash160) []byte {
	return append([]byte{accountPrefix}, account...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
