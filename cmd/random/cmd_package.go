package main

import (
	"flag"
	"os"
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageCount   = packageFlags.Int("n", 3, "number of packages to generate")
	flagPackageTypes   = packageFlags.String("types", "", "comma separated list of training codes to choose from")
	flagPackageUnknown = packageFlags.Bool("unknown", false, "append one package with unknown training code")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates YAML file content with random sensor packages",
	do:        generatePackages,
	flags:     packageFlags,
}

func generatePackages() {
	if *flagPackageCount < 0 {
		fatalf("-n must not be negative, got %d", *flagPackageCount)
	}
	packages := randomPackages(*flagPackageCount, *flagPackageTypes, *flagPackageUnknown)
	if err := sensor.Encode(os.Stdout, packages); err != nil {
		fatalf("cannot write packages: %s", err)
	}
}

func randomPackages(n int, types string, unknown bool) []sensor.Package {
	var codes []string
	if types != "" {
		codes = strings.Split(types, ",")
	}

	if n < 0 {
		n = 0
	}

	packages := make([]sensor.Package, 0, n+1)
	for i := 0; i < n; i++ {
		code := random.TrainingCode()
		if len(codes) > 0 {
			code = strings.TrimSpace(codes[i%len(codes)])
		}
		packages = append(packages, sensor.Package{Type: code, Data: random.PackageData(code)})
	}

	if unknown {
		code := random.UnknownTrainingCode()
		packages = append(packages, sensor.Package{Type: code, Data: random.PackageData(code)})
	}
	return packages
}
