package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const testContract = "0bd7ec4cd1ffd2d3fd86ba0e37e24dc1b3b5d9b1"

func execute(t *testing.T, a *app, args ...string) string {
	cmd := a.rootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute(), out.String())

	return out.String()
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.DebugLevel))
	require.True(t, log.Core().Enabled(zap.InfoLevel))

	log, err = newLogger(true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestCommitmentCommand(t *testing.T) {
	f := filepath.Join(t.TempDir(), "content")
	require.NoError(t, os.WriteFile(f, []byte("secret"), 0o600))

	out := execute(t, &app{v: viper.New()}, "commitment", "--key", "0203", f)

	const expected = "f1e28e2150b473723e2a91fe14fba5875a2801ff91e0037a0b17226647263aa9"
	raw, err := hex.DecodeString(expected)
	require.NoError(t, err)

	require.Equal(t, []string{expected, base58.Encode(raw)}, strings.Fields(out))
}

func TestConfigSources(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
rpc: http://config:30333
contract: `+testContract+`
timeout: 1s
`), 0o600))

	content := filepath.Join(t.TempDir(), "content")
	require.NoError(t, os.WriteFile(content, []byte("secret"), 0o600))

	t.Setenv("EXCHANGE_TIMEOUT", "3s")

	a := &app{v: viper.New()}
	execute(t, a, "--config", cfg, "--debug", "commitment", "--key", "00", content)

	// Environment overrides config file.
	require.Equal(t, 3*time.Second, a.v.GetDuration(cfgTimeout))
	require.Equal(t, "http://config:30333", a.v.GetString(cfgRPC))
	require.True(t, a.v.GetBool(cfgDebug))

	h, err := a.contractHash()
	require.NoError(t, err)
	require.Equal(t, testContract, h.StringLE())

	t.Run("flag overrides config file", func(t *testing.T) {
		a := &app{v: viper.New()}
		execute(t, a, "--config", cfg, "--rpc", "http://flag:30333", "commitment", "--key", "00", content)
		require.Equal(t, "http://flag:30333", a.v.GetString(cfgRPC))
	})

	t.Run("missing config file", func(t *testing.T) {
		cmd := (&app{v: viper.New()}).rootCommand()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "commitment", "--key", "00", content})
		require.ErrorContains(t, cmd.Execute(), "read config file")
	})
}

func TestContractHash(t *testing.T) {
	a := &app{v: viper.New()}

	_, err := a.contractHash()
	require.ErrorIs(t, err, errNoContract)

	a.v.Set(cfgContract, "not a hash")
	_, err = a.contractHash()
	require.Error(t, err)

	a.v.Set(cfgContract, "0x"+testContract)
	h, err := a.contractHash()
	require.NoError(t, err)
	require.Equal(t, testContract, h.StringLE())
}

func TestParseAccount(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseAccount(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseAccount("0x" + h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseAccount("NotAnAddress")
	require.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	require.EqualValues(t, 42, id.Int64())

	for _, s := range []string{"", "0", "-1", "abc"} {
		_, err = parseID(s)
		require.Error(t, err, s)
	}
}

func TestAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")

	wlt, err := wallet.NewWallet(path)
	require.NoError(t, err)

	acc, err := wallet.NewAccount()
	require.NoError(t, err)
	require.NoError(t, acc.Encrypt("pass", keys.NEP2ScryptParams()))
	wlt.AddAccount(acc)
	require.NoError(t, wlt.Save())
	wlt.Close()

	a := &app{v: viper.New(), log: zaptest.NewLogger(t)}

	_, err = a.account()
	require.ErrorContains(t, err, "wallet is not set")

	a.v.Set(cfgWallet, path)
	a.v.Set(cfgPassword, "wrong")
	_, err = a.account()
	require.ErrorContains(t, err, "decrypt account")

	a.v.Set(cfgPassword, "pass")
	res, err := a.account()
	require.NoError(t, err)
	require.Equal(t, acc.ScriptHash(), res.ScriptHash())
	require.NotNil(t, res.PrivateKey())

	hash := util.Uint256{1, 2, 3}
	sig := res.PrivateKey().SignHash(hash)
	require.True(t, res.PublicKey().Verify(sig, hash.BytesBE()))

	a.v.Set(cfgAddress, address.Uint160ToString(util.Uint160{1}))
	_, err = a.account()
	require.ErrorContains(t, err, "is missing in the wallet")
}
