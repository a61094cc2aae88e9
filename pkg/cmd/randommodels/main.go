package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/gilchrisn/netsci-analysis/pkg/config"
	"github.com/gilchrisn/netsci-analysis/pkg/models"
	"github.com/gilchrisn/netsci-analysis/pkg/pipeline"
)

func main() {
	flags := pflag.NewFlagSet("randommodels", pflag.ExitOnError)
	configFile := flags.StringP("config", "c", "", "config file (yaml, toml or json)")
	flags.IntP("vertices", "n", 1000, "order of every generated graph")
	flags.Uint64("seed", 0, "generator seed (time based when unset)")
	flags.Float64("er-probability", models.DefaultEdgeProbability, "Erdős–Rényi edge probability")
	flags.Float64("rewire-probability", models.DefaultRewireProbability, "small world rewiring probability")
	flags.String("small-world", models.AlgorithmWattsStrogatz, "small world algorithm: watts-strogatz or batagelj-brandes")
	flags.Int("diameter-samples", models.DefaultDiameterSamples, "node pairs sampled for the diameter estimate")
	flags.Int("clustering-samples", models.DefaultClusteringSamples, "nodes sampled for average clustering")
	flags.String("log-level", "info", "log level")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.Parse(os.Args[1:])

	cfg := config.NewConfig("randommodels")
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := cfg.BindFlags(flags, map[string]string{
		"vertices":           "models.vertices",
		"seed":               "models.seed",
		"er-probability":     "models.er_probability",
		"rewire-probability": "models.rewire_probability",
		"small-world":        "models.small_world_algorithm",
		"diameter-samples":   "models.diameter_samples",
		"clustering-samples": "models.clustering_samples",
		"log-level":          "logging.level",
		"log-file":           "logging.file",
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := cfg.CreateLogger()
	if _, err := pipeline.RunModels(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Random graph model comparison failed")
	}
}
