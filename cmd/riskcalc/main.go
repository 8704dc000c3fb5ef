package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"riskcalc/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := app.DefaultConfig()
	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "riskcalc:", err)
		return 1
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "riskcalc:", err)
		return 1
	}
	return 0
}
