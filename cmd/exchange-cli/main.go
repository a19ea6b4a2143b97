/*
Command exchange-cli deploys and operates the exchange contract.

Every flag of the root command can be set in the config file (--config) or
through EXCHANGE_* environment variables, e.g. EXCHANGE_RPC. The wallet
password is read from EXCHANGE_PASSWORD only.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
