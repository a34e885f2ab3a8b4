package main

import (
	"context"
	"flag"
	"os"

	"github.com/arhyth/payxgo"
	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "", "path to configuration file")
	report := flag.String("report", "", "report format, csv or pdf; overrides config")
	summary := flag.Bool("summary", false, "print accept/reject totals to stderr")
	flag.Parse()
	if flag.NArg() != 1 {
		logger.Fatal().Msg("usage: payxgo [-config config.yml] [-report csv|pdf] [-summary] transactions.csv")
	}

	var cfg payxgo.Config
	cfg.Engine.Workers = 4
	cfg.Engine.QueueDepth = 256
	cfg.Report.Format = "csv"
	if *cfp != "" {
		cfgfl, err := os.Open(*cfp)
		if err != nil {
			logger.Fatal().Err(err).Msg("error opening config file")
		}
		if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
		cfgfl.Close()
	}
	if cfg.Log.Level != "" {
		lvl, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			logger.Fatal().Err(err).Msg("error parsing log level")
		}
		zerolog.SetGlobalLevel(lvl)
	}
	if *report != "" {
		cfg.Report.Format = *report
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating snowflake node")
	}
	logger = logger.With().Str("run_id", node.Generate().String()).Logger()

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening transactions file")
	}
	defer in.Close()

	proc := payxgo.NewProcessor(cfg.Engine.Workers, cfg.Engine.QueueDepth, &logger)
	accts, err := proc.Run(context.Background(), payxgo.NewCSVSource(in))
	if err != nil {
		logger.Fatal().Err(err).Msg("error processing transactions")
	}

	switch cfg.Report.Format {
	case "csv":
		err = payxgo.WriteCSVReport(os.Stdout, accts)
	case "pdf":
		err = payxgo.WritePDFReport(os.Stdout, accts)
	default:
		logger.Fatal().Str("format", cfg.Report.Format).Msg("unknown report format")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("error writing report")
	}

	if *summary {
		payxgo.WriteSummary(os.Stderr, proc.Counts())
	}
}
