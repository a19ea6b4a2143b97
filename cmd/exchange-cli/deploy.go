package main

import (
	"fmt"
	"time"

	"github.com/metacrowd/exchange-contract/contracts"
	"github.com/metacrowd/exchange-contract/contracts/exchange/exchangeconst"
	"github.com/metacrowd/exchange-contract/deploy"
	"github.com/spf13/cobra"
)

const (
	cfgContractDir = "contract-dir"
	cfgRequestLock = "request-lock"
	cfgTaskLock    = "task-lock"
)

func (a *app) deployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy exchange contract or update it to the local version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctr, err := contracts.ReadExchange(a.v.GetString(cfgContractDir))
			if err != nil {
				return err
			}

			acc, err := a.account()
			if err != nil {
				return err
			}

			c, err := a.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			addr, err := deploy.Deploy(cmd.Context(), deploy.Prm{
				Logger:              a.log,
				Blockchain:          c,
				LocalAccount:        acc,
				Contract:            ctr,
				RequestLockDuration: a.v.GetDuration(cfgRequestLock),
				TaskLockDuration:    a.v.GetDuration(cfgTaskLock),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), addr.StringLE())

			return nil
		},
	}

	flags := cmd.Flags()
	flags.String(cfgContractDir, contracts.ExchangeDir, "Directory with compiled contract.nef and manifest.json")
	flags.Duration(cfgRequestLock, exchangeconst.DefaultRequestLockDuration*time.Millisecond,
		"Period after request fulfillment when only the requester may release payment")
	flags.Duration(cfgTaskLock, exchangeconst.DefaultTaskLockDuration*time.Millisecond,
		"Period after task deadline when the task deposit stays locked")

	return a.bindFlags(cmd)
}
