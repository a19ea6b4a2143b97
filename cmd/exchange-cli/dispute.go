package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
)

func (a *app) disputeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispute",
		Short: "File and resolve request disputes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <request>",
		Short: "Print dispute of the request",
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

			d, err := r.GetRequestDispute(id)
			if err != nil {
				return exchange.ParseFault(err)
			}

			return printJSON(cmd.OutOrStdout(), newDisputeView(d))
		},
	}, a.disputeFileCommand(), a.disputeResolveCommand())

	return cmd
}

func (a *app) disputeFileCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "file <request> <content-file>",
		Short: "Dispute fulfilled request proving the delivered content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			preimage, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read delivered content: %w", err)
			}

			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			txHash, vub, err := s.FileRequestDispute(id, s.acc.ScriptHash(), preimage, description)
			return a.wait(cmd, s, txHash, vub, err)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Dispute description")

	return cmd
}

func (a *app) disputeResolveCommand() *cobra.Command {
	var favor bool

	cmd := &cobra.Command{
		Use:   "resolve <request>",
		Short: "Resolve request dispute, the account must be an arbiter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			txHash, vub, err := s.ResolveRequestDispute(id, favor)
			return a.wait(cmd, s, txHash, vub, err)
		},
	}

	cmd.Flags().BoolVar(&favor, "favor", false, "Resolve in favor of the requester")

	return cmd
}

func (a *app) commitmentCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "commitment <content-file>",
		Short: "Print commitment of the content bound to the key",
		Long: `Print commitment of the content bound to the key in hex and base58.

Sellers attach the commitment on request fulfillment with the requester
encryption key, data task participants submit it as an artifact hash with
the task public key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bKey, err := hex.DecodeString(key)
			if err != nil {
				return fmt.Errorf("invalid key: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read content: %w", err)
			}

			c := exchange.Commitment(bKey, data)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(c))
			fmt.Fprintln(cmd.OutOrStdout(), base58.Encode(c))

			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Key the commitment is bound to (hex)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
