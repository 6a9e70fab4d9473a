package serve

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/sync/errgroup"

	"github.com/sig-0/penrates/cmd/env"
	"github.com/sig-0/penrates/fetch"
	"github.com/sig-0/penrates/history"
	"github.com/sig-0/penrates/ingest"
	"github.com/sig-0/penrates/provider/pen"
	"github.com/sig-0/penrates/server"
	"github.com/sig-0/penrates/server/config"
	"github.com/sig-0/penrates/stream"
)

const (
	defaultFintechURL = "https://cuantoestaeldolar.pe/"
	defaultSpotURL    = "https://www.investing.com/currencies/usd-pen"

	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

	defaultIntervalMS = 300_000 // 5 minutes
)

// serveCfg wraps the serve configuration
type serveCfg struct {
	config *config.Config

	configPath string

	fintechURL string
	spotURL    string
	userAgent  string

	intervalMS   int64
	fetchTimeout time.Duration
	maxSamples   int
}

// NewServeCmd creates the serve subcommand
func NewServeCmd() *ffcli.Command {
	cfg := &serveCfg{
		config: config.DefaultConfig(),
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "serve",
		ShortUsage: "serve [flags]",
		LongHelp:   "Serves the penrates sampling backend",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

func (c *serveCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.config.ListenAddress,
		"listen",
		config.DefaultListenAddress,
		"the IP:PORT URL for the server",
	)

	fs.StringVar(
		&c.configPath,
		"config",
		"",
		"the path to the server TOML configuration, if any",
	)

	fs.StringVar(
		&c.fintechURL,
		"fintech-url",
		defaultFintechURL,
		"the URL of the fintech exchange-house board",
	)

	fs.StringVar(
		&c.spotURL,
		"spot-url",
		defaultSpotURL,
		"the URL of the spot reference page",
	)

	fs.StringVar(
		&c.userAgent,
		"user-agent",
		defaultUserAgent,
		"the browser user agent for page fetches",
	)

	fs.Int64Var(
		&c.intervalMS,
		"interval-ms",
		defaultIntervalMS,
		"the sampling cycle interval, in milliseconds",
	)

	fs.DurationVar(
		&c.fetchTimeout,
		"fetch-timeout",
		time.Second*45,
		"the per-operation page fetch timeout",
	)

	fs.IntVar(
		&c.maxSamples,
		"max-samples",
		history.DefaultMaxSamples,
		"the maximum number of retained day samples",
	)
}

func (c *serveCfg) exec(ctx context.Context, _ []string) error {
	// Read the server configuration, if any
	if c.configPath != "" {
		serverCfg, err := config.Read(c.configPath)
		if err != nil {
			return fmt.Errorf("unable to read server config, %w", err)
		}

		c.config = serverCfg
	}

	if c.intervalMS <= 0 {
		return fmt.Errorf("invalid cycle interval %dms", c.intervalMS)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("unable to load .env file")
	}

	// Create the day's history and the stream hub over it
	hist := history.New(c.maxSamples)

	hub := stream.NewHub(
		hist,
		stream.WithLogger(logger),
	)

	// Create the shared browser engine (launched lazily)
	engine := fetch.NewChromeEngine(
		fetch.WithLogger(logger),
		fetch.WithUserAgent(c.userAgent),
		fetch.WithOpTimeout(c.fetchTimeout),
	)
	defer engine.Close()

	// Create the USD/PEN cycle sampler
	sampler := pen.NewSampler(
		engine,
		pen.NewFintechSource(
			c.fintechURL,
			pen.WithSourceLogger(logger),
		),
		pen.NewSpotSource(
			c.spotURL,
			pen.WithSourceLogger(logger),
		),
		time.Duration(c.intervalMS)*time.Millisecond,
		pen.WithSamplerLogger(logger),
	)

	// Create the cycle orchestrator, committing through the hub
	orchestrator := ingest.New(
		hub,
		ingest.WithLogger(logger),
	)

	if err := orchestrator.Register(sampler); err != nil {
		return fmt.Errorf("unable to register sampler, %w", err)
	}

	s, err := server.New(
		hist,
		hub,
		server.WithLogger(logger),
		server.WithConfig(c.config),
	)
	if err != nil {
		return fmt.Errorf("unable to create server, %w", err)
	}

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	group, gCtx := errgroup.WithContext(runCtx)

	group.Go(func() error {
		return orchestrator.Start(gCtx)
	})

	group.Go(func() error {
		return s.Serve(gCtx)
	})

	return group.Wait()
}
