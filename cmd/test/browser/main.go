package main

import (
	"context"
	"flag"
	"fmt"
	"go-jobwatch-automation/internal/browser"
	"go-jobwatch-automation/internal/config"
	"go-jobwatch-automation/internal/inspector"
	"log"

	"github.com/playwright-community/playwright-go"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	fmt.Println("🌐 Testing browser and inspector...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}
	if len(cfg.JobURLs) == 0 {
		log.Fatal("❌ No job_urls configured")
	}

	mgr, err := browser.New(browser.Options{Headless: cfg.Headless, UserAgent: cfg.UserAgent})
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer mgr.Close()
	fmt.Println("✅ Playwright started")

	insp := inspector.New(mgr.Page(), nil, inspector.DefaultTimings())

	url := cfg.JobURLs[0]
	fmt.Printf("🔍 Inspecting %s\n", url)
	result, err := insp.Inspect(context.Background(), url)
	if err != nil {
		log.Fatalf("❌ Inspection failed: %v", err)
	}
	if result.Available {
		fmt.Printf("🎉 Available: %s\n", result.Reason)
	} else {
		fmt.Printf("💤 Not available: %s\n", result.Reason)
	}

	//take screenshot
	if _, err := mgr.Page().Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("browser-test.png"),
	}); err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: browser-test.png")
	}
	fmt.Println("✨ Test complete!")
}
