package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

const defaultOpTimeout = time.Second * 45

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ChromeEngine drives a shared headless Chrome browser.
// The browser is expensive to launch, so it is started lazily on the
// first Acquire and reused by every subsequent session. A failed
// launch is retried on the next Acquire
type ChromeEngine struct {
	logger    *slog.Logger
	userAgent string
	opTimeout time.Duration

	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc

	mu sync.Mutex
}

// NewChromeEngine creates a new (unstarted) Chrome engine
func NewChromeEngine(opts ...ChromeOption) *ChromeEngine {
	e := &ChromeEngine{
		logger:    noopLogger,
		opTimeout: defaultOpTimeout,
	}

	// Apply the options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Acquire opens a new tab on the shared browser, launching the
// browser first if needed
func (e *ChromeEngine) Acquire(ctx context.Context) (Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browserCtx == nil {
		if err := e.launch(ctx); err != nil {
			return nil, fmt.Errorf("unable to launch browser engine: %w", err)
		}
	}

	tabCtx, tabCancel := chromedp.NewContext(e.browserCtx)

	return &chromeSession{
		ctx:       tabCtx,
		cancel:    tabCancel,
		opTimeout: e.opTimeout,
	}, nil
}

// launch starts the shared browser process.
// Callers must hold e.mu
func (e *ChromeEngine) launch(ctx context.Context) error {
	allocOpts := chromedp.DefaultExecAllocatorOptions[:]

	if e.userAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(e.userAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Run with no tasks starts the browser process
	launchCtx, cancel := context.WithTimeout(browserCtx, e.opTimeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(launchCtx); err != nil {
		browserCancel()
		allocCancel()

		return err
	}

	e.browserCtx = browserCtx
	e.browserCancel = browserCancel
	e.allocCancel = allocCancel

	e.logger.Info("browser engine started")

	return nil
}

// Close tears down the shared browser, if it was ever started
func (e *ChromeEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browserCtx == nil {
		return
	}

	e.browserCancel()
	e.allocCancel()

	e.browserCtx = nil
	e.browserCancel = nil
	e.allocCancel = nil
}

// chromeSession is a single tab on the shared browser
type chromeSession struct {
	ctx       context.Context
	cancel    context.CancelFunc
	opTimeout time.Duration
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	return s.run(
		ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (s *chromeSession) WaitVisible(ctx context.Context, selector string) error {
	return s.run(
		ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
	)
}

func (s *chromeSession) HTML(ctx context.Context) (string, error) {
	var html string

	err := s.run(
		ctx,
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}

	return html, nil
}

func (s *chromeSession) Close() error {
	s.cancel()

	return nil
}

// run executes the tasks on the session tab, bounded by the
// per-operation timeout and the caller's context
func (s *chromeSession) run(ctx context.Context, tasks ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, s.opTimeout)
	defer cancel()

	// Propagate caller cancellation into the tab context
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, tasks...)
}
