package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/workoutlog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// without arguments the root command starts the terminal UI
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
