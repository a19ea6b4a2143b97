/*
Package deploy synchronizes the exchange contract with the Neo blockchain.

Deploy puts the contract to the chain if it is missing and updates it
otherwise. The contract address is a function of the deploying account, NEF
checksum and contract name, so repeated runs by the same account are
idempotent.
*/
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/metacrowd/exchange-contract/common"
	"github.com/metacrowd/exchange-contract/contracts"
	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the exchange contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of the exchange contract deployment.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be
	// unlocked). Updates are accepted only if it is a committee account.
	LocalAccount *wallet.Account

	// Compiled contract, see contracts.ReadExchange.
	Contract contracts.Contract

	// Lock durations set on deployment and kept in sync on update.
	RequestLockDuration time.Duration
	TaskLockDuration    time.Duration
}

// Deploy deploys the exchange contract or updates it when on-chain version
// is older than the local one. It returns the contract address.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if err := prm.Validate(); err != nil {
		return util.Uint160{}, fmt.Errorf("invalid parameters: %w", err)
	}

	sender := prm.LocalAccount.ScriptHash()
	addr := state.CreateContractHash(sender, prm.Contract.NEF.Checksum, prm.Contract.Manifest.Name)
	log := prm.Logger.With(zap.Stringer("address", addr))

	height, err := prm.Blockchain.GetBlockCount()
	if err != nil {
		return addr, fmt.Errorf("get number of the latest block: %w", err)
	}

	act, err := actor.NewTuned(prm.Blockchain, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account: sender,
			Scopes:  transaction.CalledByEntry,
		},
		Account: prm.LocalAccount,
	}}, actor.Options{
		CheckerModifier: runtimeTransactionModifier(func() uint32 { return height }),
	})
	if err != nil {
		return addr, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	switch {
	case err == nil:
		log.Info("exchange contract is already on the chain, checking version...")
		return addr, update(ctx, log, act, addr, prm)
	case !isErrContractNotFound(err):
		return addr, fmt.Errorf("get state of the exchange contract: %w", err)
	}

	log.Info("deploying exchange contract...")

	data := []any{prm.RequestLockDuration.Milliseconds(), prm.TaskLockDuration.Milliseconds()}
	txHash, vub, err := management.New(act).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest, data)
	err = await(ctx, act, txHash, vub, err)
	if err != nil {
		return addr, fmt.Errorf("deploy exchange contract: %w", err)
	}

	log.Info("exchange contract successfully deployed", zap.Stringer("tx", txHash))

	return addr, nil
}

func update(ctx context.Context, log *zap.Logger, act *actor.Actor, addr util.Uint160, prm Prm) error {
	onChain, err := exchange.NewReader(act, addr).Version()
	if err != nil {
		return fmt.Errorf("get on-chain version: %w", exchange.ParseFault(err))
	}

	if onChain.Int64() >= common.Version {
		log.Info("exchange contract is up to date", zap.Stringer("version", onChain))
	} else {
		log.Info("updating exchange contract...",
			zap.Stringer("from", onChain), zap.Int("to", common.Version))

		bNEF, err := prm.Contract.NEF.Bytes()
		if err != nil {
			return fmt.Errorf("encode NEF: %w", err)
		}

		bManifest, err := json.Marshal(&prm.Contract.Manifest)
		if err != nil {
			return fmt.Errorf("encode manifest: %w", err)
		}

		txHash, vub, err := exchange.New(act, addr).Update(bNEF, bManifest, nil)
		err = await(ctx, act, txHash, vub, err)
		if err != nil {
			return fmt.Errorf("update exchange contract: %w", err)
		}

		log.Info("exchange contract successfully updated", zap.Stringer("tx", txHash))
	}

	return syncConfig(ctx, log, act, addr, map[string]time.Duration{
		exchangeconst.RequestLockDurationKey: prm.RequestLockDuration,
		exchangeconst.TaskLockDurationKey:    prm.TaskLockDuration,
	})
}

// syncConfig sets lock durations which differ from the on-chain ones.
func syncConfig(ctx context.Context, log *zap.Logger, act *actor.Actor, addr util.Uint160, cfg map[string]time.Duration) error {
	reader := exchange.NewReader(act, addr)
	contract := exchange.New(act, addr)

	for key, d := range cfg {
		val, err := reader.Config(key)
		if err != nil {
			return fmt.Errorf("get %s config: %w", key, exchange.ParseFault(err))
		}

		if val.Int64() == d.Milliseconds() {
			log.Debug("config value is up to date", zap.String("key", key), zap.Stringer("value", val))
			continue
		}

		txHash, vub, err := contract.SetConfig(key, big.NewInt(d.Milliseconds()))
		err = await(ctx, act, txHash, vub, err)
		if err != nil {
			return fmt.Errorf("set %s config: %w", key, err)
		}

		log.Info("config value updated", zap.String("key", key),
			zap.Stringer("from", val), zap.Duration("to", d))
	}

	return nil
}

// await waits for the transaction sent with err result to be accepted and
// checks its execution state.
func await(ctx context.Context, act *actor.Actor, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return exchange.ParseFault(err)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return exchange.ParseFault(fmt.Errorf("transaction %s failed: %s", txHash.StringLE(), res.FaultException))
	}

	return nil
}

func isErrContractNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unknown contract")
}

// returns actor.TransactionCheckerModifier which checks that invocation
// finished with 'HALT' state and, if so, sets transaction's nonce and
// ValidUntilBlock to 100*N and 100*(N+1) correspondingly, where
// 100*N <= current height < 100*(N+1). Concurrent runs produce the same
// transaction then.
func runtimeTransactionModifier(getBlockchainHeight func() uint32) actor.TransactionCheckerModifier {
	return func(r *result.Invoke, tx *transaction.Transaction) error {
		err := actor.DefaultCheckerModifier(r, tx)
		if err != nil {
			return exchange.ParseFault(err)
		}

		curHeight := getBlockchainHeight()
		const span = 100
		n := curHeight / span

		tx.Nonce = n * span

		if math.MaxUint32-span > tx.Nonce {
			tx.ValidUntilBlock = tx.Nonce + span
		} else {
			tx.ValidUntilBlock = math.MaxUint32
		}

		return nil
	}
}

// Validate checks that Prm is ready to be passed to Deploy.
func (p Prm) Validate() error {
	switch {
	case p.Logger == nil:
		return errors.New("logger is not set")
	case p.Blockchain == nil:
		return errors.New("blockchain is not set")
	case p.LocalAccount == nil:
		return errors.New("local account is not set")
	case p.RequestLockDuration < 0 || p.TaskLockDuration < 0:
		return errors.New("negative lock duration")
	}

	return nil
}
