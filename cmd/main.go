package main

import (
	"context"
	"flag"
	"os"

	"github.com/Stunkymonkey/multi-ch-constructor/contractor"
	"golang.org/x/exp/slog"
)

func main() {
	config_path := flag.String("config", "config.yaml", "path to the build config")
	flag.Parse()

	logger := slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	config := ReadConfig(*config_path)

	g, err := loadGraph(config.Build.Graph, config.Build.Dimensions)
	if err != nil {
		slog.Error("failed to load graph: " + err.Error())
		os.Exit(1)
	}

	driver := contractor.NewHierarchyDriver(g, contractor.Options{
		Workers:       config.Workers,
		QueueCapacity: config.QueueCapacity,
		MaxLpRounds:   config.Build.LP.MaxIterations,
		RestPercent:   config.RestPercent,
	})

	if err := driver.ContractCompletely(context.Background()); err != nil {
		slog.Error("contraction failed: " + err.Error())
		os.Exit(1)
	}

	summary := driver.Stats().Summary()
	slog.Info("contraction complete",
		"shortcuts", summary.ShortCount,
		"same", summary.SameCount,
		"unknown", summary.Unknown,
		"lp-rounds-max", summary.LpMax,
		"constraints-max", summary.ConstMax,
	)

	if err := storeHierarchy(config.Build.Output, g, driver); err != nil {
		slog.Error("failed to store hierarchy: " + err.Error())
		os.Exit(1)
	}
}
