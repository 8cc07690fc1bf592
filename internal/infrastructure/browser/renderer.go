package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Defaults applied when Options fields are zero.
const (
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultNavTimeout  = 30 * time.Second
	defaultSettleDelay = 3 * time.Second
)

// Options control how workorder pages are loaded.
type Options struct {
	// ExecPath overrides Chrome binary discovery when set.
	ExecPath string
	// UserAgent is sent on navigation; Printavo serves a degraded page to
	// obvious bots, so it should look like a real browser.
	UserAgent string
	// NavTimeout bounds navigation plus content settle time.
	NavTimeout time.Duration
	// SettleDelay is waited after navigation for client-rendered content.
	SettleDelay time.Duration
	// Headless runs Chrome without a display.
	Headless bool
}

// Renderer loads pages in headless Chrome and hands back a parsed document
// for read-only selector queries. It implements domain.PageRenderer.
type Renderer struct {
	opts Options
	log  *zap.SugaredLogger
}

// NewRenderer creates a renderer, filling unset options with defaults.
func NewRenderer(opts Options, log *zap.SugaredLogger) *Renderer {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = defaultNavTimeout
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = defaultSettleDelay
	}
	return &Renderer{opts: opts, log: log}
}

// Render navigates to pageURL, waits for dynamic content to settle, and
// returns the rendered document. The browser tab and allocator are torn down
// before Render returns, on success and failure alike — the page handle
// never outlives the invocation.
func (r *Renderer) Render(ctx context.Context, pageURL string) (*goquery.Document, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", r.opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(r.opts.UserAgent),
	)
	if bin := r.chromeBinary(); bin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(bin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.opts.NavTimeout+r.opts.SettleDelay)
	defer cancelTimeout()

	r.log.Debugw("rendering page", "url", pageURL)

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(r.opts.SettleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("navigate %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}
	return doc, nil
}

// chromeBinary locates the Chrome/Chromium binary to launch.
func (r *Renderer) chromeBinary() string {
	if r.opts.ExecPath != "" {
		return r.opts.ExecPath
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
