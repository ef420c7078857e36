package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lukeandrew/subsurface/pkg/divelog/cache"
	"github.com/lukeandrew/subsurface/pkg/divelog/config"
	"github.com/lukeandrew/subsurface/pkg/divelog/gitload"
	"github.com/lukeandrew/subsurface/pkg/divelog/logging"
	"github.com/lukeandrew/subsurface/pkg/divelog/output"
	"github.com/lukeandrew/subsurface/pkg/divelog/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runLoad is the main load command handler.
func runLoad(_ *cobra.Command, args []string) error {
	location := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logLevel := cfg.Logging.Level
	if getVerbose() {
		logLevel = "debug"
	}
	if err := logging.Init(logging.Config{
		Level:      logLevel,
		Path:       cfg.Logging.Path,
		Components: cfg.Logging.Components,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	opts := gitload.Options{
		Branch: viper.GetString("branch"),
	}

	// The load cache keys on the branch head, so stale results can only
	// come from a stale cache format, not a stale tree.
	var loadCache *cache.Cache
	if cfg.Cache.Enabled && !viper.GetBool("no_cache") {
		loadCache, err = cache.Open(cfg.Cache.Path)
		if err != nil {
			printVerbose("Cache unavailable, loading without it: %v", err)
		} else {
			defer func() { _ = loadCache.Close() }()
			opts.Cache = loadCache
		}
	}

	if !getQuiet() {
		opts.Report = func(e types.LoadError) {
			fmt.Fprintf(os.Stderr, "warning: %s\n", e.String())
		}
	}

	loader := gitload.New(opts)
	result, err := loader.Load(location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	format := viper.GetString("format")
	if format == "" {
		format = cfg.Format
	}
	formatter, err := output.Get(format)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, output.Available())
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, output.BuildResult(location, result)); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	return nil
}
