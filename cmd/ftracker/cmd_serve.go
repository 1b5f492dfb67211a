package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
	"github.com/Yandex-Practicum/go-ftracker/internal/logger"
	"github.com/Yandex-Practicum/go-ftracker/internal/server"
)

var serveCmd = cmd{
	name:      "serve",
	shortHelp: "serves training calculations over HTTP",
	flags:     serveFlags,
	do:        serve,
}

func serveFlags(cfg *config.Config) *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "address to listen on")
	fs.IntVar(&cfg.MaxConnections, "max-connections", cfg.MaxConnections, "maximum number of simultaneous connections, 0 is unlimited")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logging level")
	return fs
}

func serve(cfg config.Config, _ []string) error {
	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, log); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
