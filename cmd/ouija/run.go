package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ouijasearch/ouija/internal/telemetry"
	"github.com/ouijasearch/ouija/pkg/content"
	"github.com/ouijasearch/ouija/pkg/content/catalogue"
	"github.com/ouijasearch/ouija/pkg/content/refprovider"
	"github.com/ouijasearch/ouija/pkg/evaluate"
	"github.com/ouijasearch/ouija/pkg/model"
	"github.com/ouijasearch/ouija/pkg/ouijaquery"
	"github.com/ouijasearch/ouija/pkg/ouijaquery/refresolver"
	"github.com/ouijasearch/ouija/pkg/report"
	"github.com/ouijasearch/ouija/pkg/resultsink"
	"github.com/ouijasearch/ouija/pkg/runconfig"
	"github.com/ouijasearch/ouija/pkg/searchdriver"
	"github.com/ouijasearch/ouija/pkg/seedspace"
)

type runFlags struct {
	configPath  string
	cutoff      int
	threads     int
	start       string
	count       int
	metricsAddr string
	svgReport   string
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run <query.json>",
		Short: "Run a seed search over the configured range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a run.yaml configuration file")
	cmd.Flags().IntVar(&flags.cutoff, "cutoff", -1, "override the query's minimum score cutoff")
	cmd.Flags().IntVar(&flags.threads, "threads", 0, "override the worker goroutine count (0 = use config)")
	cmd.Flags().StringVar(&flags.start, "start", "", "override the first seed searched")
	cmd.Flags().IntVar(&flags.count, "count", 0, "search this many seeds from --start (0 = use config's range end)")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address")
	cmd.Flags().StringVar(&flags.svgReport, "svg-report", "", "write a score histogram SVG to this path")

	return cmd
}

func runSearch(cmd *cobra.Command, queryPath string, flags runFlags) error {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	cfg, err := loadRunConfig(queryPath, flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	q, err := loadQuery(queryPath)
	if err != nil {
		return fmt.Errorf("failed to load query: %w", err)
	}
	if flags.cutoff >= 0 {
		q.MinimumScore = flags.cutoff
	}

	start, end := content.Seed(cfg.SeedRange.Start), content.Seed(cfg.SeedRange.End)
	if end == "" {
		end = content.Seed("ZZZZZZZZ")
	}

	provider := refprovider.New()
	driver := searchdriver.New(provider)
	sink := resultsink.NewQueue(cfg.QueueCapacity)
	cancelled := &atomic.Bool{}
	stats := &searchdriver.Stats{}

	rareTag, _ := catalogue.Resolve(model.CategoryTag, "RareTag")
	uncommonTag, _ := catalogue.Resolve(model.CategoryTag, "UncommonTag")

	driverCfg := searchdriver.Config{
		Threads:               cfg.Threads,
		BatchLanes:            max(1, cfg.BatchSize),
		RareJokerSpawnTag:     rareTag,
		UncommonJokerSpawnTag: uncommonTag,
	}

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = telemetry.New()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				log.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	log.Info("search starting", "query", queryPath, "start", start, "end", end)

	runErr := make(chan error, 1)
	go func() {
		runErr <- driver.Run(driverCfg, start, end, q, sink, cancelled, stats)
		sink.Close()
	}()

	out, err := os.Create(cfg.Output.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer out.Close()

	fmt.Fprintln(out, report.Header(q))
	var accepted []evaluate.Result
	for res := range sink.Results() {
		accepted = append(accepted, res)
		fmt.Fprintln(out, report.FormatRow(res, q))
		fmt.Fprintln(cmd.OutOrStdout(), report.FormatRow(res, q))
	}

	if err := <-runErr; err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	snap := stats.Snapshot()
	log.Info("search complete",
		"seedsScanned", snap.SeedsScanned,
		"lanesSurvived", snap.LanesSurvived,
		"matches", snap.MatchesFound)

	svgPath := flags.svgReport
	if svgPath == "" {
		svgPath = cfg.Output.SVGPath
	}
	if svgPath != "" {
		if err := report.SaveHistogramToFile(accepted, svgPath, report.DefaultHistogramOptions()); err != nil {
			return fmt.Errorf("failed to write SVG report: %w", err)
		}
	}

	return nil
}

func loadRunConfig(queryPath string, flags runFlags) (*runconfig.Config, error) {
	var cfg *runconfig.Config
	var err error
	if flags.configPath != "" {
		cfg, err = runconfig.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = &runconfig.Config{
			Threads:       4,
			BatchSize:     8,
			QueueCapacity: 4096,
			LogLevel:      "info",
			SeedRange:     runconfig.SeedRangeCfg{Start: "00000000", End: "ZZZZZZZZ"},
			Output:        runconfig.OutputCfg{CSVPath: "results.csv"},
		}
	}

	cfg.QueryPath = queryPath
	if flags.threads > 0 {
		cfg.Threads = flags.threads
	}
	if flags.start != "" {
		cfg.SeedRange.Start = flags.start
	}
	if flags.count > 0 {
		endSeed, err := seedEndFromCount(cfg.SeedRange.Start, flags.count)
		if err != nil {
			return nil, err
		}
		cfg.SeedRange.End = string(endSeed)
	}
	if flags.metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.ListenAddr = flags.metricsAddr
	}

	return cfg, cfg.Validate()
}

func seedEndFromCount(start string, count int) (content.Seed, error) {
	idx, err := seedspace.ToIndex(content.Seed(start))
	if err != nil {
		return "", err
	}
	return seedspace.FromIndex(idx + int64(count) - 1), nil
}

func loadQuery(path string) (*ouijaquery.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw ouijaquery.RawQuery
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return ouijaquery.Load(raw, refresolver.New())
}
