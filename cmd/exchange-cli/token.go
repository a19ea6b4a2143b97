package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account>",
		Short: "Print exchange token balance of the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseAccount(args[0])
			if err != nil {
				return err
			}

			r, c, err := a.reader(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			b, err := r.BalanceOf(acc)
			if err != nil {
				return fmt.Errorf("get balance: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatAmount(b))

			return nil
		},
	}
}

func (a *app) reputationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reputation <account>",
		Short: "Print reputation score of the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseAccount(args[0])
			if err != nil {
				return err
			}

			r, c, err := a.reader(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			score, err := r.Reputation(acc)
			if err != nil {
				return fmt.Errorf("get reputation: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), score)

			return nil
		},
	}
}
