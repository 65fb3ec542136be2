package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	chasecmd "github.com/progressions/shot-client-next-sub002/internal/cmd/chase"
	entrypoint "github.com/progressions/shot-client-next-sub002/internal/platform/cmd"
)

func main() {
	cfg, err := chasecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceChase))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := chasecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
