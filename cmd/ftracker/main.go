package main

//go:generate go build -o=../../bin/ftracker

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
)

var cmds = []cmd{
	runCmd,
	serveCmd,
}

type cmd struct {
	name      string
	shortHelp string
	flags     func(cfg *config.Config) *flag.FlagSet
	do        func(cfg config.Config, args []string) error
}

const Usage = `ftracker calculates distance, mean speed and spent calories of trainings.

Usage: ftracker [command] [flags]

The commands are:
	help	show this help message
`

func help() {
	fmt.Fprint(os.Stderr, Usage)

	for _, cmd := range cmds {
		fmt.Fprintf(os.Stderr, "\t%s\t%s\n", cmd.name, cmd.shortHelp)
	}

	os.Exit(2)
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ftracker: "+format+"\n", args...)
	os.Exit(1)
}

func usagef(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ftracker: "+format+"\n", args...)
	os.Exit(2)
}

// checkConfig reports flag values that are well-formed but unusable.
func checkConfig(cfg config.Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	if cfg.MaxConnections < 0 {
		return fmt.Errorf("invalid -max-connections %d: must not be negative", cfg.MaxConnections)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("cannot load config: %s", err)
	}

	name, args := runCmd.name, os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	if name == "help" {
		help()
	}

	for _, cmd := range cmds {
		if name != cmd.name {
			continue
		}

		if cmd.flags != nil {
			fs := cmd.flags(&cfg)
			if err := fs.Parse(args); err != nil {
				fatalf("cannot parse arguments: %s", err)
			}
			args = fs.Args()
		}
		if err := checkConfig(cfg); err != nil {
			usagef("%s", err)
		}

		if err := cmd.do(cfg, args); err != nil {
			fatalf("%s", err)
		}
		return
	}

	help()
}
