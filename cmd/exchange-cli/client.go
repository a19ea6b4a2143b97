package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoContract = errors.New("exchange contract address is not set")

func (a *app) dial(ctx context.Context) (*rpcclient.Client, error) {
	endpoint := a.v.GetString(cfgRPC)
	timeout := a.v.GetDuration(cfgTimeout)

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    timeout,
		RequestTimeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial %s: %w", endpoint, err)
	}

	if err = c.Init(); err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	a.log.Debug("connected to RPC server", zap.String("endpoint", endpoint))

	return c, nil
}

func (a *app) contractHash() (util.Uint160, error) {
	s := a.v.GetString(cfgContract)
	if s == "" {
		return util.Uint160{}, errNoContract
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("invalid contract address %q: %w", s, err)
	}

	return h, nil
}

// account opens the configured wallet and returns decrypted account. The
// wallet is not closed: closing it wipes private keys of its accounts.
func (a *app) account() (*wallet.Account, error) {
	path := a.v.GetString(cfgWallet)
	if path == "" {
		return nil, errors.New("wallet is not set")
	}

	wlt, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var h util.Uint160
	if addr := a.v.GetString(cfgAddress); addr != "" {
		h, err = address.StringToUint160(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid account address %q: %w", addr, err)
		}
	} else {
		h = wlt.GetChangeAddress()
	}

	acc := wlt.GetAccount(h)
	if acc == nil {
		return nil, fmt.Errorf("account %s is missing in the wallet", address.Uint160ToString(h))
	}

	if err = acc.Decrypt(a.v.GetString(cfgPassword), wlt.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// reader returns read-only exchange client. Close the returned RPC client
// after use.
func (a *app) reader(ctx context.Context) (*exchange.ContractReader, *rpcclient.Client, error) {
	h, err := a.contractHash()
	if err != nil {
		return nil, nil, err
	}

	c, err := a.dial(ctx)
	if err != nil {
		return nil, nil, err
	}

	return exchange.NewReader(invoker.New(c, nil), h), c, nil
}

// session is a state-changing exchange client signing with the wallet
// account.
type session struct {
	*exchange.Contract

	hash util.Uint160
	act  *actor.Actor
	acc  *wallet.Account
	rpc  *rpcclient.Client
}

func (a *app) session(ctx context.Context) (*session, error) {
	h, err := a.contractHash()
	if err != nil {
		return nil, err
	}

	acc, err := a.account()
	if err != nil {
		return nil, err
	}

	c, err := a.dial(ctx)
	if err != nil {
		return nil, err
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &session{
		Contract: exchange.New(act, h),
		hash:     h,
		act:      act,
		acc:      acc,
		rpc:      c,
	}, nil
}

func (s *session) close() {
	s.rpc.Close()
}

// wait waits for the sent transaction and prints its hash. Contract
// failures are returned as *exchange.FaultError.
func (a *app) wait(cmd *cobra.Command, s *session, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return exchange.ParseFault(err)
	}

	a.log.Debug("transaction sent", zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := s.act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return exchange.ParseFault(fmt.Errorf("transaction %s failed: %s", txHash.StringLE(), res.FaultException))
	}

	a.log.Info("transaction accepted", zap.Stringer("tx", txHash))
	fmt.Fprintln(cmd.OutOrStdout(), txHash.StringLE())

	return nil
}

// parseAccount accepts Neo address or LE hex script hash.
func parseAccount(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("invalid account %q: neither address nor script hash", s)
	}

	return h, nil
}
