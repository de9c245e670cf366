package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/jobboard/internal/catalog"
	"github.com/jonathan/jobboard/internal/config"
	"github.com/jonathan/jobboard/internal/llm"
	"github.com/jonathan/jobboard/internal/server"
	"github.com/jonathan/jobboard/internal/sink"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway server",
	Long:  `Start an HTTP server that exposes the job catalog and the AI gateway endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	oracle, err := newOracle(ctx, cfg)
	if err != nil {
		return err
	}

	snk, err := newSink(ctx, cfg)
	if err != nil {
		if oracle != nil {
			_ = oracle.Close()
		}
		return err
	}

	srv := server.New(server.Config{
		Port:          cfg.Port,
		Oracle:        oracle,
		Sink:          snk,
		Catalog:       catalog.Default(),
		OracleTimeout: cfg.OracleTimeoutDuration(),
		AckDelay:      cfg.AckDelayDuration(),
	})

	return srv.Start()
}

// newOracle returns nil without error when no API key is configured.
// The gateway then rejects every request with a configuration error.
func newOracle(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		log.Printf("[serve] no API key configured (set API_KEY or GEMINI_API_KEY); gateway requests will fail")
		return nil, nil
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	oracle, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create oracle client: %w", err)
	}
	log.Printf("[serve] oracle model %s", oracle.GetModel(llm.TierStandard))
	return oracle, nil
}

func newSink(ctx context.Context, cfg *config.Config) (sink.Sink, error) {
	if cfg.RedisURL == "" {
		return sink.NewLogSink(nil), nil
	}

	rdb, err := sink.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	log.Printf("[serve] queueing submissions on redis")
	return sink.NewRedisSink(rdb, ""), nil
}
