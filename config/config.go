package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"hrdesk.co.kr/hrdesk/infrastructure/devops"
	kakao "hrdesk.co.kr/hrdesk/kakao/v1"
)

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type SessionConfig struct {
	SecretKey string        `yaml:"secretKey"`
	TTL       time.Duration `yaml:"ttl"`
}

type KakaoConfig struct {
	APIKey      string        `yaml:"apiKey"`
	LocalURL    string        `yaml:"localUrl"`
	MobilityURL string        `yaml:"mobilityUrl"`
	Timeout     time.Duration `yaml:"timeout"`
}

type ExpenseConfig struct {
	TemplatePath   string `yaml:"templatePath"`
	OutputDir      string `yaml:"outputDir"`
	TemplateBucket string `yaml:"templateBucket"`
	ArchiveBucket  string `yaml:"archiveBucket"`
	MailSender     string `yaml:"mailSender"`
}

type SlackConfig struct {
	Token          string `yaml:"token"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	DataDir string        `yaml:"dataDir"`
	Kakao   KakaoConfig   `yaml:"kakao"`
	Expense ExpenseConfig `yaml:"expense"`
	Slack   SlackConfig   `yaml:"slack"`
}

// ParameterLoader returns the raw value of a named remote parameter.
type ParameterLoader func(ctx context.Context, name string) (string, error)

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: "0.0.0.0:8000"},
		Session: SessionConfig{TTL: 10 * time.Minute},
		DataDir: ".",
		Kakao: KakaoConfig{
			LocalURL:    kakao.DefaultLocalURL,
			MobilityURL: kakao.DefaultMobilityURL,
			Timeout:     5 * time.Second,
		},
		Expense: ExpenseConfig{
			TemplatePath: "travel.xlsx",
			OutputDir:    "downloads",
		},
	}
}

// Load builds the configuration from defaults, a .env file, the optional YAML
// file at path, the environment and finally the SSM parameter named by
// HRDESK_SSM_PARAMETER.
func Load(ctx context.Context, path string) (*Config, error) {
	return load(ctx, path, devops.LoadParameter)
}

func load(ctx context.Context, path string, parameters ParameterLoader) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("[ERROR] read .env: %v\n", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if name := os.Getenv("HRDESK_SSM_PARAMETER"); name != "" {
		value, err := parameters(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load ssm parameter: %w", err)
		}
		if err := yaml.Unmarshal([]byte(value), cfg); err != nil {
			return nil, fmt.Errorf("parse ssm parameter %s: %w", name, err)
		}
		fmt.Printf("[INFO] applied configuration from parameter %s\n", name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	setString("HRDESK_ADDR", &c.Server.Addr)
	if v, ok := os.LookupEnv("HRDESK_ALLOWED_ORIGINS"); ok {
		c.Server.AllowedOrigins = splitList(v)
	}
	setString("HRDESK_SECRET_KEY", &c.Session.SecretKey)
	if err := setDuration("HRDESK_SESSION_TTL", &c.Session.TTL); err != nil {
		return err
	}
	setString("HRDESK_DATA_DIR", &c.DataDir)

	setString("KAKAO_API_KEY", &c.Kakao.APIKey)
	setString("KAKAO_LOCAL_URL", &c.Kakao.LocalURL)
	setString("KAKAO_MOBILITY_URL", &c.Kakao.MobilityURL)
	if err := setDuration("KAKAO_TIMEOUT", &c.Kakao.Timeout); err != nil {
		return err
	}

	setString("HRDESK_EXPENSE_TEMPLATE", &c.Expense.TemplatePath)
	setString("HRDESK_EXPENSE_OUTPUT_DIR", &c.Expense.OutputDir)
	setString("HRDESK_TEMPLATE_BUCKET", &c.Expense.TemplateBucket)
	setString("HRDESK_ARCHIVE_BUCKET", &c.Expense.ArchiveBucket)
	setString("HRDESK_MAIL_SENDER", &c.Expense.MailSender)

	setString("SLACK_BOT_TOKEN", &c.Slack.Token)
	setString("SLACK_INFO_CHANNEL", &c.Slack.InfoChannelID)
	setString("SLACK_ERROR_CHANNEL", &c.Slack.ErrorChannelID)
	return nil
}

func (c *Config) Validate() error {
	if c.Session.SecretKey == "" {
		return errors.New("session secret key is required (HRDESK_SECRET_KEY)")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.DataDir == "" {
		return errors.New("data dir is required")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
