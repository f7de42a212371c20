// Load envs from .env
// Load YAML config
// Apply env overrides
// Fill defaults and validate

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EmailConfig configures the SMTP notification channel. The password is
// best kept out of the file: JOBWATCH_SMTP_PASSWORD overrides it.
type EmailConfig struct {
	Enabled    bool   `yaml:"enabled"`
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	ToEmail    string `yaml:"to_email"`
}

// TelegramConfig configures the Telegram notification channel.
// TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID override the file values.
type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

// NotificationsConfig groups the notification channels.
type NotificationsConfig struct {
	Desktop  bool           `yaml:"desktop"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// Config is the flat settings object for one monitoring run.
type Config struct {
	JobURLs []string `yaml:"job_urls"`
	//seconds between rounds
	CheckInterval int `yaml:"check_interval"`
	//round ceiling; <= 0 runs unbounded
	MaxAttempts int `yaml:"max_attempts"`
	//consecutive inspection failures before a target is dropped; 0 disables
	MaxTargetFailures int    `yaml:"max_target_failures"`
	Headless          bool   `yaml:"headless"`
	UserAgent         string `yaml:"user_agent"`
	//append-only log tee; empty logs to stderr only
	LogFile       string              `yaml:"log_file"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// Default returns the starter configuration, the same one WriteDefault
// lays down on first run.
func Default() *Config {
	return &Config{
		JobURLs: []string{
			"https://hiring.amazon.ca/app#/jobDetail?jobId=JOB-CA-0000000315&locale=en-CA",
		},
		CheckInterval: 30,
		MaxAttempts:   1000,
		Headless:      true,
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		LogFile:       "jobwatch.log",
		Notifications: NotificationsConfig{
			Desktop: true,
			Email: EmailConfig{
				SMTPServer: "smtp.gmail.com",
				SMTPPort:   587,
			},
		},
	}
}

// Load reads the config file at path, creating it with defaults on first
// run, then layers .env and environment overrides on top and validates
// the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		//first run: lay down a starter file and keep going with defaults
		if werr := WriteDefault(path); werr != nil {
			return nil, fmt.Errorf("create default config: %w", werr)
		}
		log.Printf("📝 Created default config file: %s", path)
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the starter config to path, refusing to clobber an
// existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval returns check_interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.CheckInterval) * time.Second
}

func (c *Config) applyEnv() error {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.Notifications.Telegram.BotToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.Notifications.Telegram.ChatID = id
	}
	if pw := os.Getenv("JOBWATCH_SMTP_PASSWORD"); pw != "" {
		c.Notifications.Email.Password = pw
	}
	return nil
}

// Validate rejects settings the loop cannot run with. An empty job_urls
// list is legal: the run resolves immediately.
func (c *Config) Validate() error {
	if c.CheckInterval <= 0 {
		return fmt.Errorf("check_interval must be positive, got %d", c.CheckInterval)
	}
	if e := c.Notifications.Email; e.Enabled {
		if e.SMTPServer == "" || e.Email == "" || e.ToEmail == "" {
			return errors.New("email notifications enabled but smtp_server, email or to_email is empty")
		}
		if e.SMTPPort <= 0 {
			return fmt.Errorf("smtp_port must be positive, got %d", e.SMTPPort)
		}
	}
	if t := c.Notifications.Telegram; t.Enabled {
		if t.BotToken == "" {
			return errors.New("telegram notifications enabled but bot_token is empty")
		}
		if t.ChatID == 0 {
			return errors.New("telegram notifications enabled but chat_id is empty")
		}
	}
	return nil
}
