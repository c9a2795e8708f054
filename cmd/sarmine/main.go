// Command sarmine mines additive structure-activity rules from a dataset of
// measured records and proposes new candidates.
//
//	sarmine run data.csv --config sarmine.yaml --db runs.db
//	sarmine rules data.csv wt
//	sarmine runs --db runs.db
//	sarmine config > sarmine.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
