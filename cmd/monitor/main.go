package main

import (
	"context"
	"flag"
	"go-jobwatch-automation/internal/browser"
	"go-jobwatch-automation/internal/config"
	"go-jobwatch-automation/internal/inspector"
	"go-jobwatch-automation/internal/monitor"
	"go-jobwatch-automation/internal/notify"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	setup := flag.Bool("setup", false, "write a starter config and install the browser, then exit")
	flag.Parse()

	if *setup {
		runSetup(*configPath)
		return
	}

	//load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	log.Printf("🔧 Config loaded. Watching %d job URL(s)", len(cfg.JobURLs))

	//build notification channels
	notifier := notify.FromConfig(cfg)

	//init playwright session, one browser for the whole run
	mgr, err := browser.New(browser.Options{
		Headless:  cfg.Headless,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer mgr.Close()
	log.Println("✅ Browser initialized successfully!")

	insp := inspector.New(
		mgr.Page(),
		browser.NewScreenshots(filepath.Join("logs", "screenshots")),
		inspector.DefaultTimings(),
	)
	session := monitor.NewSession(cfg.JobURLs, cfg.Interval(), cfg.MaxAttempts, cfg.MaxTargetFailures)

	//cancel the run on SIGINT/SIGTERM so the browser still closes cleanly
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("🛑 Received signal %v, finishing up...", sig)
		cancel()
	}()

	summary := monitor.New(insp, notifier).Run(ctx, session)
	printSummary(summary)
}

// setupLogging tees the log stream into the configured file so a long
// unattended run leaves a trail. Returns a closer for the file.
func setupLogging(path string) func() {
	if path == "" {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("⚠️ Could not open log file %s: %v", path, err)
		return func() {}
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return func() { f.Close() }
}

func printSummary(s monitor.Summary) {
	log.Printf("🏁 Run finished: %s after %d round(s)", s.Outcome, s.Rounds)
	for _, url := range s.Applied {
		log.Printf("   ✅ applied: %s", url)
	}
	for _, url := range s.Abandoned {
		log.Printf("   🚫 abandoned: %s", url)
	}
	for _, url := range s.Pending {
		log.Printf("   ⏳ still pending: %s", url)
	}
}

// runSetup is the one-shot bootstrap: starter config plus the chromium
// build playwright drives.
func runSetup(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		log.Printf("📝 Config file %s already exists, leaving it alone", configPath)
	} else if err := config.WriteDefault(configPath); err != nil {
		log.Fatalf("❌ Failed to write default config: %v", err)
	} else {
		log.Printf("📝 Created default config file: %s", configPath)
	}

	log.Println("⬇️ Installing playwright driver and chromium (first run takes a while)...")
	if err := browser.Install(); err != nil {
		log.Fatalf("❌ Playwright install failed: %v", err)
	}
	log.Println("✅ Setup complete. Edit the config and run the monitor.")
}
