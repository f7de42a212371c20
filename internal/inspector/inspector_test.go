package inspector

import (
	"context"
	"go-jobwatch-automation/internal/browser"
	"os"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Apply Now", "apply now"},
		{"  This  job\nis not   available ", "this job is not available"},
		{"Thís jõb ís nôt àvailable", "this job is not available"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeText(tt.in))
	}
}

//waits shrunk so a mocked page round-trips fast; the click settle stays
//generous enough for an onclick navigation to commit
func fastTimings() Timings {
	return Timings{
		Navigation:  5 * time.Second,
		LoadSettle:  10 * time.Millisecond,
		ButtonWait:  250 * time.Millisecond,
		Click:       time.Second,
		ClickSettle: 250 * time.Millisecond,
	}
}

//helper start mock browser
func newBrowserPage(t *testing.T) playwright.Page {
	t.Helper()
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("could not launch playwright: %v", err)
	}
	t.Cleanup(func() { pw.Stop() })
	br, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("could not launch browser: %v", err)
	}
	t.Cleanup(func() { br.Close() })
	page, err := br.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	return page
}

//route all requests back to the fixture instead of the network
func servePage(t *testing.T, page playwright.Page, html string) {
	t.Helper()
	err := page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        html,
		})
	})
	if err != nil {
		t.Fatalf("could not install route: %v", err)
	}
}

func TestInspectDetectsWarningBanner(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><p>This job is not available for application now.</p></body></html>`)
	insp := New(page, nil, fastTimings())

	verdict, err := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.False(t, verdict.Available)
	assert.Equal(t, "warning banner present", verdict.Reason)
}

func TestInspectDetectsMissingShifts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><h2>No work shift found</h2><button>Apply</button></body></html>`)
	insp := New(page, nil, fastTimings())

	verdict, err := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.False(t, verdict.Available)
	//the banner wins even with an apply button on the page
	assert.Equal(t, "no work shift found", verdict.Reason)
}

func TestInspectMissingApplyButton(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><h1>Warehouse Associate</h1></body></html>`)
	insp := New(page, nil, fastTimings())

	verdict, err := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.False(t, verdict.Available)
	assert.Equal(t, "apply button not found", verdict.Reason)
}

func TestInspectDisabledApplyButton(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><button disabled>Apply</button></body></html>`)
	insp := New(page, nil, fastTimings())

	verdict, err := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.False(t, verdict.Available)
	assert.Equal(t, "apply button is disabled", verdict.Reason)
}

func TestInspectDisabledByClass(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><button class="btn btn-disabled">Apply</button></body></html>`)
	insp := New(page, nil, fastTimings())

	verdict, err := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.False(t, verdict.Available)
	assert.Equal(t, "apply button is disabled", verdict.Reason)
}

func TestInspectActiveApplyButton(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><h1>Warehouse Associate</h1><button class="btn primary">Apply</button></body></html>`)
	insp := New(page, nil, fastTimings())

	verdict, err := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.True(t, verdict.Available)
	assert.Equal(t, "apply button is active", verdict.Reason)
}

func TestInspectReportsNavigationFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	err := page.Route("**/*", func(route playwright.Route) {
		route.Abort("connectionrefused")
	})
	if err != nil {
		t.Fatalf("could not install route: %v", err)
	}
	insp := New(page, nil, fastTimings())

	_, inspectErr := insp.Inspect(context.Background(), "https://hiring.example/job/1")

	assert.Error(t, inspectErr)
	assert.ErrorContains(t, inspectErr, "load https://hiring.example/job/1")
}

func TestApplyFollowsRedirectIntoApplication(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body>
<button onclick="window.location='https://hiring.example/application/form'">Apply</button>
</body></html>`)
	insp := New(page, nil, fastTimings())

	note, err := insp.Apply(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.Equal(t, "application form opened", note)
}

func TestApplyWithoutRedirect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><button onclick="this.textContent='Submitted'">Apply</button></body></html>`)
	insp := New(page, nil, fastTimings())

	note, err := insp.Apply(context.Background(), "https://hiring.example/job/1")

	assert.NoError(t, err)
	assert.Equal(t, "apply button clicked", note)
}

func TestApplyFailureCapturesScreenshot(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	page := newBrowserPage(t)
	servePage(t, page, `<html><body><p>nothing clickable here</p></body></html>`)
	dir := t.TempDir()
	insp := New(page, browser.NewScreenshots(dir), fastTimings())

	_, err := insp.Apply(context.Background(), "https://hiring.example/job/1")

	assert.Error(t, err)
	assert.ErrorContains(t, err, "click apply button")
	entries, readErr := os.ReadDir(dir)
	assert.NoError(t, readErr)
	assert.NotEmpty(t, entries)
}
