// Package browser owns the headless-browser layer: one Playwright driver per
// process, one short-lived session (browser + context + page) per fetcher
// call. Sessions are never shared and always torn down before a fetch call
// returns.
package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Defaults for rendered navigation. Sites override through SessionOptions.
const (
	DefaultTimeoutMS = 25000
	DefaultSettleMS  = 2000
)

// SessionOptions configures one browser session.
type SessionOptions struct {
	UserAgent   string
	Locale      string  // empty keeps the browser default
	TimeoutMS   float64 // per-navigation cap, 0 = DefaultTimeoutMS
	SettleMS    float64 // fixed post-load render wait, 0 = DefaultSettleMS
	Scroll      bool    // paced scrolling after settle, for bot-wary boards
	CookiesPath string  // optional cookies JSON loaded into the context
	DebugDir    string  // when set, Screenshot captures land here
}

// Session renders pages for a single fetcher call.
type Session interface {
	// Render navigates to url, waits the fixed settle delay for client-side
	// rendering, and returns the resulting HTML.
	Render(ctx context.Context, url string) (string, error)
	// Screenshot saves a full-page capture under the session's debug
	// directory. A session without one does nothing.
	Screenshot(name string) error
	Close() error
}

// Browser hands out sessions. Implemented by Driver; tests substitute fakes.
type Browser interface {
	NewSession(ctx context.Context, opts SessionOptions) (Session, error)
}

// Driver wraps the process-wide Playwright runtime.
type Driver struct {
	pw       *playwright.Playwright
	headless bool
	log      *zap.SugaredLogger
}

// NewDriver starts the Playwright runtime. Call Stop when the process is done
// with rendered fetching.
func NewDriver(headless bool, log *zap.SugaredLogger) (*Driver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	return &Driver{pw: pw, headless: headless, log: log}, nil
}

// Stop shuts the Playwright runtime down.
func (d *Driver) Stop() error {
	return d.pw.Stop()
}

// NewSession launches a fresh Chromium browser, context and page. The caller
// must Close the session on every path.
func (d *Driver) NewSession(ctx context.Context, opts SessionOptions) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := d.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(d.headless),
	})
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	ctxOpts := playwright.BrowserNewContextOptions{}
	if opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(opts.UserAgent)
	}
	if opts.Locale != "" {
		ctxOpts.Locale = playwright.String(opts.Locale)
	}
	bctx, err := b.NewContext(ctxOpts)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	if opts.CookiesPath != "" {
		cookies, err := LoadCookies(opts.CookiesPath)
		if err != nil {
			d.log.Warnw("could not load cookies, continuing without", "path", opts.CookiesPath, "error", err)
		} else if err := bctx.AddCookies(cookies); err != nil {
			d.log.Warnw("could not add cookies to context", "error", err)
		}
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		b.Close()
		return nil, fmt.Errorf("new page: %w", err)
	}

	return &session{browser: b, ctx: bctx, page: page, opts: opts}, nil
}

type session struct {
	browser playwright.Browser
	ctx     playwright.BrowserContext
	page    playwright.Page
	opts    SessionOptions
}

func (s *session) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeout := s.opts.TimeoutMS
	if timeout <= 0 {
		timeout = DefaultTimeoutMS
	}
	settle := s.opts.SettleMS
	if settle <= 0 {
		settle = DefaultSettleMS
	}

	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeout),
	}); err != nil {
		return "", fmt.Errorf("goto %s: %w", url, err)
	}

	// Fixed settle delay: these boards hydrate results client-side with no
	// reliable network-idle signal.
	s.page.WaitForTimeout(settle)

	if s.opts.Scroll {
		if err := humanScroll(s.page); err != nil {
			return "", fmt.Errorf("scroll page: %w", err)
		}
	}

	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("read page content: %w", err)
	}
	return html, nil
}

func (s *session) Screenshot(name string) error {
	if s.opts.DebugDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.opts.DebugDir, 0o755); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}
	stamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.opts.DebugDir, fmt.Sprintf("%s_%s.png", name, stamp))
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}
	return nil
}

func (s *session) Close() error {
	err := s.page.Close()
	if cerr := s.ctx.Close(); err == nil {
		err = cerr
	}
	if berr := s.browser.Close(); err == nil {
		err = berr
	}
	return err
}
