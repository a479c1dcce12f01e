// Package main is the entrypoint of TubeSonic.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"tubesonic/internal/cfg"
	"tubesonic/internal/domain/logger"
)

// main is the main entrypoint of the program.
func main() {
	startTime := time.Now()

	// Interrupts kill a running yt-dlp
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cfg.Execute(ctx, os.Args[1:])
	cancel()

	logger.Pl.D(1, "TubeSonic (PID: %d) finished in %.2f seconds", os.Getpid(), time.Since(startTime).Seconds())

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
