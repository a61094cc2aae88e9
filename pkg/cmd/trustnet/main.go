package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gilchrisn/netsci-analysis/pkg/config"
	"github.com/gilchrisn/netsci-analysis/pkg/pipeline"
)

func main() {
	flags := pflag.NewFlagSet("trustnet", pflag.ExitOnError)
	configFile := flags.StringP("config", "c", "", "config file (yaml, toml or json)")
	flags.StringP("input", "i", "database.csv", "trust network CSV: source,trust,target,timestamp")
	flags.StringP("output", "o", "network_visualization.png", "PNG path for the network drawing")
	flags.Bool("render", true, "draw the network")
	flags.String("layout", "eades", "layout algorithm: eades or mds")
	flags.Uint64("seed", 42, "seed for sampling and layout")
	flags.Int("clustering-samples", 0, "nodes sampled for average clustering (0 = all)")
	flags.String("log-level", "info", "log level")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.Parse(os.Args[1:])

	cfg := config.NewConfig("trustnet")
	cfg.SetDefault("input.path", "database.csv")
	cfg.SetDefault("output.image_path", "network_visualization.png")
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := cfg.BindFlags(flags, map[string]string{
		"input":              "input.path",
		"output":             "output.image_path",
		"render":             "output.render",
		"layout":             "layout.algorithm",
		"seed":               "algorithm.seed",
		"clustering-samples": "clustering.samples",
		"log-level":          "logging.level",
		"log-file":           "logging.file",
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := cfg.CreateLogger()
	if _, err := pipeline.RunTrust(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Trust network analysis failed")
	}
}
