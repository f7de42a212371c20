package inspector

import (
	"context"
	"fmt"
	"go-jobwatch-automation/internal/browser"
	"go-jobwatch-automation/internal/monitor"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	// banner phrases compared against normalized page text
	bannerNotAvailable = "this job is not available for application now"
	bannerNoShift      = "no work shift found"

	applyButtonSelector = `button:has-text("Apply")`
)

// Timings holds every wait the inspector uses. Tests shrink these so a
// mocked page round-trips in milliseconds.
type Timings struct {
	Navigation  time.Duration // page load ceiling
	LoadSettle  time.Duration // pause after load before reading the DOM
	ButtonWait  time.Duration // how long the apply button may take to show
	Click       time.Duration // click actionability ceiling
	ClickSettle time.Duration // pause after the click before reading the URL
}

// DefaultTimings returns the waits used against real hiring sites.
func DefaultTimings() Timings {
	return Timings{
		Navigation:  30 * time.Second,
		LoadSettle:  3 * time.Second,
		ButtonWait:  5 * time.Second,
		Click:       10 * time.Second,
		ClickSettle: 5 * time.Second,
	}
}

// Inspector reads job pages through a shared playwright page and decides
// whether the posting can be applied to. It is the browser-backed
// implementation of the loop's PageInspector port.
type Inspector struct {
	page    playwright.Page
	shots   *browser.Screenshots
	timings Timings
}

// New wires the inspector to the session page. shots may be nil to skip
// failure screenshots.
func New(page playwright.Page, shots *browser.Screenshots, timings Timings) *Inspector {
	return &Inspector{page: page, shots: shots, timings: timings}
}

// Inspect loads the posting and reports whether an apply affordance is
// present and usable. A returned error means the page could not be
// inspected at all; the caller treats that as a transient failure.
func (in *Inspector) Inspect(ctx context.Context, url string) (monitor.Inspection, error) {
	if err := ctx.Err(); err != nil {
		return monitor.Inspection{}, err
	}

	if _, err := in.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   ms(in.timings.Navigation),
	}); err != nil {
		return monitor.Inspection{}, fmt.Errorf("load %s: %w", url, err)
	}

	//let client-side rendering finish before reading anything
	if err := settle(ctx, in.timings.LoadSettle); err != nil {
		return monitor.Inspection{}, err
	}

	body, err := in.page.Locator("body").InnerText()
	if err != nil {
		return monitor.Inspection{}, fmt.Errorf("read page text: %w", err)
	}
	text := normalizeText(body)

	if strings.Contains(text, bannerNotAvailable) {
		return monitor.Inspection{Reason: "warning banner present"}, nil
	}
	if strings.Contains(text, bannerNoShift) {
		return monitor.Inspection{Reason: "no work shift found"}, nil
	}

	button := in.page.Locator(applyButtonSelector).First()
	if err := button.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: ms(in.timings.ButtonWait),
	}); err != nil {
		return monitor.Inspection{Reason: "apply button not found"}, nil
	}

	enabled, err := button.IsEnabled()
	if err != nil {
		return monitor.Inspection{}, fmt.Errorf("query apply button: %w", err)
	}
	class, _ := button.GetAttribute("class")
	if !enabled || strings.Contains(strings.ToLower(class), "disabled") {
		return monitor.Inspection{Reason: "apply button is disabled"}, nil
	}

	return monitor.Inspection{Available: true, Reason: "apply button is active"}, nil
}

// Apply clicks through the apply affordance on the posting. The returned
// note says how far the click visibly got; an error means the attempt
// failed and may be retried on a later round.
func (in *Inspector) Apply(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := in.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   ms(in.timings.Navigation),
	}); err != nil {
		in.shots.CaptureFailure(in.page, "apply-load")
		return "", fmt.Errorf("load %s: %w", url, err)
	}
	if err := settle(ctx, in.timings.LoadSettle); err != nil {
		return "", err
	}

	button := in.page.Locator(applyButtonSelector).First()
	if err := button.Click(playwright.LocatorClickOptions{
		Timeout: ms(in.timings.Click),
	}); err != nil {
		in.shots.CaptureFailure(in.page, "apply-click")
		return "", fmt.Errorf("click apply button: %w", err)
	}
	log.Println("    🖱️ Apply button clicked, waiting for the page to react...")

	if err := settle(ctx, in.timings.ClickSettle); err != nil {
		return "", err
	}

	//a redirect into the application flow is the strongest success signal
	current := strings.ToLower(in.page.URL())
	if strings.Contains(current, "application") || strings.Contains(current, "apply") {
		return "application form opened", nil
	}
	return "apply button clicked", nil
}

func ms(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}

func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
