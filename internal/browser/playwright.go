package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

// launch flags the monitor has always run chromium with. Mostly noise
// reduction plus the AutomationControlled mask so hiring sites treat the
// session like a regular visitor.
var launchArgs = []string{
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--window-size=1920,1080",
	"--disable-blink-features=AutomationControlled",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-renderer-backgrounding",
}

// chrome exposes navigator.webdriver when driven; hide it before any
// page script runs
const maskWebdriverScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Options configures the browser session.
type Options struct {
	Headless  bool
	UserAgent string
}

// Manager owns the playwright driver, one chromium instance and one page
// for the whole monitoring run. The page is deliberately shared: rounds
// are sequential, so a single session keeps memory flat no matter how
// long the monitor runs.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

// New starts the playwright driver and launches a chromium session ready
// for navigation.
func New(opts Options) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	}
	if opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(opts.UserAgent)
	}
	context, err := browser.NewContext(ctxOpts)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	if err := context.AddInitScript(playwright.Script{Content: playwright.String(maskWebdriverScript)}); err != nil {
		log.Printf("⚠️ Could not install webdriver mask: %v", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("open page: %w", err)
	}

	return &Manager{pw: pw, browser: browser, context: context, page: page}, nil
}

// Page returns the shared page every navigation goes through.
func (m *Manager) Page() playwright.Page {
	return m.page
}

// Close tears the session down page first, driver last. Safe to call
// even if a layer already died.
func (m *Manager) Close() {
	if m.page != nil {
		if err := m.page.Close(); err != nil {
			log.Printf("⚠️ Failed to close page: %v", err)
		}
	}
	if m.context != nil {
		if err := m.context.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser context: %v", err)
		}
	}
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser: %v", err)
		}
	}
	if m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			log.Printf("⚠️ Failed to stop playwright: %v", err)
		}
	}
}

// Install downloads the playwright driver plus the chromium build it
// drives. Run once before the first monitoring session.
func Install() error {
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	})
}
