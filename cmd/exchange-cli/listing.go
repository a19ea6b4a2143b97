package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/spf13/cobra"
)

// maxIteratorItems limits expanded iterators of the list commands.
const maxIteratorItems = 1000

func (a *app) listingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Inspect listings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Print listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			r, c, err := a.reader(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			l, err := r.GetListing(id)
			if err != nil {
				return exchange.ParseFault(err)
			}

			return printJSON(cmd.OutOrStdout(), newListingView(l))
		},
	}, &cobra.Command{
		Use:   "list <owner>",
		Short: "Print ids of the listings created by the owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseAccount(args[0])
			if err != nil {
				return err
			}

			r, c, err := a.reader(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			items, err := r.ListingsOfExpanded(owner, maxIteratorItems)
			if err != nil {
				return fmt.Errorf("get listings: %w", err)
			}

			for i := range items {
				id, err := items[i].TryInteger()
				if err != nil {
					return fmt.Errorf("invalid listing id #%d: %w", i, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}, &cobra.Command{
		Use:   "submission <task> <index>",
		Short: "Print submission of the crowd task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			index, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid submission index %q", args[1])
			}

			r, c, err := a.reader(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			s, err := r.GetSubmission(id, new(big.Int).SetUint64(index))
			if err != nil {
				return exchange.ParseFault(err)
			}

			return printJSON(cmd.OutOrStdout(), newSubmissionView(s))
		},
	})

	return cmd
}

func parseID(s string) (*big.Int, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid id %q", s)
	}

	return big.NewInt(id), nil
}
