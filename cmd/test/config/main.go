package main

import (
	"flag"
	"fmt"
	"go-jobwatch-automation/internal/config"
	"log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Job URLs: %d\n", len(cfg.JobURLs))
	for _, u := range cfg.JobURLs {
		fmt.Printf("     - %s\n", u)
	}
	fmt.Printf("   Check interval: %s\n", cfg.Interval())
	fmt.Printf("   Max attempts: %d\n", cfg.MaxAttempts)
	fmt.Printf("   Max target failures: %d\n", cfg.MaxTargetFailures)
	fmt.Printf("   Headless: %t\n", cfg.Headless)
	fmt.Printf("   Log file: %s\n", cfg.LogFile)
	fmt.Printf("   Desktop notifications: %t\n", cfg.Notifications.Desktop)
	fmt.Printf("   Email notifications: %t (smtp %s:%d)\n",
		cfg.Notifications.Email.Enabled, cfg.Notifications.Email.SMTPServer, cfg.Notifications.Email.SMTPPort)
	fmt.Printf("   Telegram notifications: %t (token %s)\n",
		cfg.Notifications.Telegram.Enabled, mask(cfg.Notifications.Telegram.BotToken))
}

func mask(s string) string {
	if s == "" {
		return "(unset)"
	}
	if len(s) > 6 {
		s = s[:6]
	}
	return s + "..."
}
