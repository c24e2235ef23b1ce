package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered pages before the browser is
// replaced with a fresh instance.
const DefaultMaxPages = 50

// BrowserManager owns a headless Chrome instance for the lifetime of an
// analysis process. Chrome's memory footprint grows with every rendered
// page and never returns to baseline, so the serve command would leak
// without periodically replacing the browser. The manager is safe for
// concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	rendered int64
	maxPages int64
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of rendered pages before the browser is
// replaced. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome browser. Close must be
// called when the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	bm.browser = browser
	bm.launcher = lnchr
	return bm, nil
}

// Browser returns a browser ready to open a page, replacing the current
// instance first when the render count has reached the threshold.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.rendered >= bm.maxPages {
		// The old browser keeps serving if the replacement fails.
		if browser, lnchr, err := launchBrowser(); err == nil {
			bm.stop()
			bm.browser = browser
			bm.launcher = lnchr
			bm.rendered = 0
		}
	}

	return bm.browser
}

// PageRendered records one rendered page toward the replacement
// threshold.
func (bm *BrowserManager) PageRendered() {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.rendered++
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return bm.stop()
}

// stop shuts down the current browser and its launcher process.
// Must be called with mu held.
func (bm *BrowserManager) stop() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// launchBrowser starts a new browser instance with stability flags.
func launchBrowser() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return browser, lnchr, nil
}
