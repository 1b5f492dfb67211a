package main

import (
	"flag"
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var unusedPortFlags = flag.NewFlagSet("unused-port", flag.ExitOnError)

var flagUnusedPortHost = unusedPortFlags.String("host", "", "print address for `ftracker serve -a` on given host instead of bare port")

var unusedPortCmd = cmd{
	name:      "unused-port",
	shortHelp: "finds random unused port to run ftracker server on",
	do:        generateUnusedPort,
	flags:     unusedPortFlags,
}

func generateUnusedPort() {
	if *flagUnusedPortHost != "" {
		addr, err := random.UnusedAddress(*flagUnusedPortHost)
		if err != nil {
			fatalf("cannot find unused port: %s", err)
		}
		fmt.Print(addr)
		return
	}

	port, err := random.UnusedPort()
	if err != nil {
		fatalf("cannot find unused port: %s", err)
	}
	fmt.Print(port)
}
