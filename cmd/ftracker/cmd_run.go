package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/logger"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

var runCmd = cmd{
	name:      "run",
	shortHelp: "prints training summaries for sample or given sensor packages (default)",
	flags:     runFlags,
	do:        runTrainings,
}

func runFlags(cfg *config.Config) *flag.FlagSet {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.StringVar(&cfg.PackagesPath, "packages", cfg.PackagesPath, "path to YAML file with sensor packages")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logging level")
	return fs
}

func runTrainings(cfg config.Config, _ []string) error {
	log, err := logger.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	packages := sensor.Samples()
	if cfg.PackagesPath != "" {
		packages, err = sensor.LoadFile(cfg.PackagesPath)
		if err != nil {
			return err
		}
		log.WithField("path", cfg.PackagesPath).Debugf("loaded %d packages", len(packages))
	}

	return printTrainings(os.Stdout, log, packages)
}

// printTrainings writes one summary line per package and stops on the first failed package
func printTrainings(out io.Writer, log logrus.FieldLogger, packages []sensor.Package) error {
	for i, pkg := range packages {
		training, err := ftracker.ReadPackage(pkg.Type, pkg.Data)
		if err != nil {
			return fmt.Errorf("package #%d: %w", i+1, err)
		}

		info, err := ftracker.ShowTrainingInfo(training)
		if err != nil {
			return fmt.Errorf("package #%d: %w", i+1, err)
		}

		log.WithFields(logrus.Fields{
			"type":     pkg.Type,
			"distance": info.Distance,
			"calories": info.Calories,
		}).Debug("training processed")

		if _, err := fmt.Fprintln(out, info.Message()); err != nil {
			return fmt.Errorf("cannot print summary: %w", err)
		}
	}
	return nil
}
