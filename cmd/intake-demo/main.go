package main

import (
	"context"
	"os"
	"os/signal"

	"talentintel/intake-gateway/internal/demo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		demo.NewFormatter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
