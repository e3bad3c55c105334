package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/ainews/pkg/config"
	"github.com/umputun/ainews/pkg/feed"
	"github.com/umputun/ainews/pkg/news"
	"github.com/umputun/ainews/pkg/translate"
	"github.com/umputun/ainews/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	Gemini struct {
		APIKey  string `long:"api-key" env:"API_KEY" description:"api key, translation is disabled without it"`
		BaseURL string `long:"base-url" env:"API_BASE_URL" description:"alternate api base url"`
	} `group:"gemini" namespace:"gemini" env-namespace:"GEMINI"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// envFiles are loaded before options are parsed, earlier files take precedence
var envFiles = []string{".env.local", ".env"}

func main() {
	loaded, envErr := loadEnvFiles(envFiles...)

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, opts.Gemini.APIKey)

	log.Printf("[INFO] starting ainews version %s", revision)
	if envErr != nil {
		log.Printf("[WARN] %v", envErr)
	}
	for _, f := range loaded {
		log.Printf("[DEBUG] loaded environment from %s", f)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components together and blocks until the server stops
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	applyOpts(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gen, err := translate.NewGenerator(translate.GeneratorOpts{
		Provider:    cfg.Translate.Provider,
		APIKey:      cfg.Translate.APIKey,
		BaseURL:     cfg.Translate.BaseURL,
		APIVersion:  cfg.Translate.APIVersion,
		Model:       cfg.Translate.Model,
		Temperature: cfg.Translate.Temperature,
		Timeout:     cfg.Translate.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to make translation generator: %w", err)
	}

	translator, err := translate.New(gen, translate.Config{
		Language:  cfg.Translate.Language,
		CacheSize: cfg.Translate.CacheSize,
		RateLimit: cfg.Translate.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to make translator: %w", err)
	}

	liveTTL, mockTTL := cfg.CacheTTLs()
	svc := news.NewService(feed.NewReader(cfg.Feed.Timeout, cfg.Feed.UserAgent), translator, news.Config{
		Top:        cfg.Translate.Top,
		BatchSize:  cfg.Translate.BatchSize,
		BatchDelay: cfg.Translate.BatchDelay,
		CacheTTL:   liveTTL,
		MockTTL:    mockTTL,
	})
	log.Printf("[INFO] %s, translation enabled: %v (%s)", svc, translator.Enabled(), cfg.Translate.Provider)

	srv := server.New(cfg, svc, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// applyOpts overrides config values with non-empty cli options
func applyOpts(cfg *config.Config, opts Opts) {
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Gemini.APIKey != "" {
		cfg.Translate.APIKey = opts.Gemini.APIKey
	}
	if opts.Gemini.BaseURL != "" {
		cfg.Translate.BaseURL = opts.Gemini.BaseURL
	}
}

// loadEnvFiles sets environment variables from dotenv files, missing files are skipped.
// Variables already set in the environment are not overridden.
func loadEnvFiles(files ...string) (loaded []string, err error) {
	for _, f := range files {
		if lerr := godotenv.Load(f); lerr != nil {
			if errors.Is(lerr, fs.ErrNotExist) {
				continue
			}
			err = errors.Join(err, fmt.Errorf("can't load %s: %w", f, lerr))
			continue
		}
		loaded = append(loaded, f)
	}
	return loaded, err
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
