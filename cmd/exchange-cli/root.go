package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "EXCHANGE"

// Config keys, flags are named the same.
const (
	cfgConfigFile = "config"
	cfgRPC        = "rpc"
	cfgContract   = "contract"
	cfgWallet     = "wallet"
	cfgAddress    = "address"
	cfgPassword   = "password"
	cfgTimeout    = "timeout"
	cfgDebug      = "debug"
)

// app is shared by all commands. Its fields are set in PersistentPreRunE of
// the root command.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "exchange-cli",
		Short:        "Client of the exchange contract",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(cfgConfigFile, "c", "", "Config file (YAML, JSON or TOML)")
	flags.StringP(cfgRPC, "r", "http://localhost:30333", "Neo RPC endpoint")
	flags.String(cfgContract, "", "Exchange contract address (hex, LE)")
	flags.StringP(cfgWallet, "w", "", "Path to NEP-6 wallet")
	flags.StringP(cfgAddress, "a", "", "Wallet account address, default account if empty")
	flags.Duration(cfgTimeout, 15*time.Second, "Timeout of RPC requests")
	flags.BoolP(cfgDebug, "d", false, "Enable debug logging")
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(
		a.deployCommand(),
		a.balanceCommand(),
		a.reputationCommand(),
		a.listingCommand(),
		a.requestCommand(),
		a.disputeCommand(),
		a.commitmentCommand(),
		a.watchCommand(),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if f := a.v.GetString(cfgConfigFile); f != "" {
		a.v.SetConfigFile(f)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	log, err := newLogger(a.v.GetBool(cfgDebug))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.log = log.With(zap.String("command", cmd.Name()))

	return nil
}

// newLogger returns console logger writing to stderr, so stdout carries
// command results only.
func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.Sampling = nil
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return c.Build()
}

// bindFlags binds local flags of the command to the viper keys of the same
// name.
func (a *app) bindFlags(cmd *cobra.Command) *cobra.Command {
	_ = a.v.BindPFlags(cmd.Flags())
	return cmd
}
