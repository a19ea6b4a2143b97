package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/spf13/cobra"
)

func (a *app) requestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Create and settle buy requests",
	}

	cmd.AddCommand(
		a.requestGetCommand(),
		a.requestCreateCommand(),
		a.requestIDCommand("cancel", "Cancel unfulfilled request and refund the escrow",
			func(s *session, id *big.Int) (util.Uint256, uint32, error) {
				return s.CancelRequest(id, s.acc.ScriptHash())
			}),
		a.requestIDCommand("release", "Release escrowed payment to the seller",
			func(s *session, id *big.Int) (util.Uint256, uint32, error) {
				return s.ReleasePayment(id, s.acc.ScriptHash())
			}),
		a.requestFulfillCommand(),
	)

	return cmd
}

func (a *app) requestGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print request",
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

			req, err := r.GetRequest(id)
			if err != nil {
				return exchange.ParseFault(err)
			}

			return printJSON(cmd.OutOrStdout(), newRequestView(req))
		},
	}
}

func (a *app) requestCreateCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "create <listing>",
		Short: "Lock listing price in escrow and request the listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := parseID(args[0])
			if err != nil {
				return err
			}

			bKey, err := hex.DecodeString(key)
			if err != nil {
				return fmt.Errorf("invalid encryption key: %w", err)
			}

			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			if len(bKey) == 0 {
				bKey = s.acc.PublicKey().Bytes()
			}

			txHash, vub, err := s.CreateRequest(listing, s.acc.ScriptHash(), bKey)
			return a.wait(cmd, s, txHash, vub, err)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Encryption key for the delivery (hex), account public key by default")

	return cmd
}

func (a *app) requestFulfillCommand() *cobra.Command {
	var (
		artifact string
		content  string
	)

	cmd := &cobra.Command{
		Use:   "fulfill <id>",
		Short: "Attach delivery to the request of the owned listing",
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

			var commitment []byte
			if content != "" {
				data, err := os.ReadFile(content)
				if err != nil {
					return fmt.Errorf("read delivered content: %w", err)
				}

				req, err := exchange.NewReader(s.act, s.hash).GetRequest(id)
				if err != nil {
					return exchange.ParseFault(err)
				}

				commitment = exchange.Commitment(req.EncryptionKey, data)
			}

			txHash, vub, err := s.Fulfill(id, s.acc.ScriptHash(), []byte(artifact), commitment)
			return a.wait(cmd, s, txHash, vub, err)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&artifact, "artifact", "", "Delivery artifact, e.g. encrypted link")
	flags.StringVar(&content, "content", "", "File with delivered content to commit to")
	_ = cmd.MarkFlagRequired("artifact")

	return cmd
}

// requestIDCommand returns command sending transaction for the request id
// on behalf of the wallet account.
func (a *app) requestIDCommand(use, short string, send func(*session, *big.Int) (util.Uint256, uint32, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
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

			txHash, vub, err := send(s, id)
			return a.wait(cmd, s, txHash, vub, err)
		},
	}
}
