package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"news_pipeline/internal/domain"
)

type Config struct {
	LogLevel    string            `yaml:"log_level"`
	LogPretty   bool              `yaml:"log_pretty"`
	Database    DatabaseConfig    `yaml:"database"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Redis       RedisConfig       `yaml:"redis"`
	AI          AIConfig          `yaml:"ai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Claude      ClaudeConfig      `yaml:"claude"`
	Translate   TranslateConfig   `yaml:"translate"`
	Trends      TrendsConfig      `yaml:"trends"`
	Images      ImagesConfig      `yaml:"images"`
	Feeds       FeedsConfig       `yaml:"feeds"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Keywords    KeywordsConfig    `yaml:"keywords"`
	Enrichment  EnrichmentConfig  `yaml:"enrichment"`
	Publishing  PublishingConfig  `yaml:"publishing"`
	Translation TranslationConfig `yaml:"translation"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig with an empty URL disables the broker.
type RabbitMQConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
	Prefetch int    `yaml:"prefetch"`
}

// RedisConfig with an empty URL keeps the keyword queue in memory.
type RedisConfig struct {
	URL    string `yaml:"url"`
	Prefix string `yaml:"prefix"`
}

type AIConfig struct {
	Provider          string        `yaml:"provider"` // gemini or claude
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	Cooldown          time.Duration `yaml:"cooldown"`
	CallTimeout       time.Duration `yaml:"call_timeout"`
	FallbackText      string        `yaml:"fallback_text"`
	DefaultLanguage   string        `yaml:"default_language"`
}

type GeminiConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	EmbedModel     string `yaml:"embed_model"`
	EmbedDimension int32  `yaml:"embed_dimension"`
}

type ClaudeConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// TranslateConfig with an empty APIKey routes translation through the generator.
type TranslateConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type TrendsConfig struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Geo         string        `yaml:"geo"`
	Topics      []string      `yaml:"topics"`
	PerTopic    int           `yaml:"per_topic"`
	MinKeywords int           `yaml:"min_keywords"`
	MaxKeywords int           `yaml:"max_keywords"`
	Fallback    []string      `yaml:"fallback"`
	Timeout     time.Duration `yaml:"timeout"`
	Retry       RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ImagesConfig struct {
	AccessKey string        `yaml:"access_key"`
	BaseURL   string        `yaml:"base_url"`
	Count     int           `yaml:"count"`
	Timeout   time.Duration `yaml:"timeout"`
}

// FeedsConfig.URLs are queued for ingestion every Interval by the generator process.
type FeedsConfig struct {
	URLs       []string      `yaml:"urls"`
	Interval   time.Duration `yaml:"interval"`
	MaxEntries int           `yaml:"max_entries"`
	Timeout    time.Duration `yaml:"timeout"`
}

type SchedulerConfig struct {
	DiscoveryInterval  time.Duration `yaml:"discovery_interval"`
	GenerationInterval time.Duration `yaml:"generation_interval"`
	SweepInterval      time.Duration `yaml:"sweep_interval"`
	JobTimeout         time.Duration `yaml:"job_timeout"`
}

// KeywordsConfig.MaxSeen bounds the dedup set; 0 keeps every keyword for the process lifetime.
type KeywordsConfig struct {
	MaxSeen int `yaml:"max_seen"`
}

type EnrichmentConfig struct {
	Operations []domain.Operation `yaml:"operations"`
}

type PublishingConfig struct {
	DefaultHour int `yaml:"default_hour"`
}

// TranslationConfig.Target is the language every new article is translated to.
type TranslationConfig struct {
	Target    string        `yaml:"target"`
	Workers   int           `yaml:"workers"`
	QueueSize int           `yaml:"queue_size"`
	Timeout   time.Duration `yaml:"timeout"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands ${VAR} references in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "ai_news_exchange"
	}
	if c.RabbitMQ.Prefetch == 0 {
		c.RabbitMQ.Prefetch = 1
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "news_pipeline"
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.AI.RequestsPerMinute == 0 {
		c.AI.RequestsPerMinute = 30
	}
	if c.AI.Cooldown == 0 {
		c.AI.Cooldown = 10 * time.Second
	}
	if c.AI.CallTimeout == 0 {
		c.AI.CallTimeout = 60 * time.Second
	}
	if c.AI.FallbackText == "" {
		c.AI.FallbackText = "Xin lỗi, tôi đang gặp sự cố kết nối với AI. Vui lòng thử lại sau."
	}
	if c.AI.DefaultLanguage == "" {
		c.AI.DefaultLanguage = "vi"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.EmbedModel == "" {
		c.Gemini.EmbedModel = "text-embedding-004"
	}
	if c.Gemini.EmbedDimension == 0 {
		c.Gemini.EmbedDimension = 768
	}
	if c.Claude.Model == "" {
		c.Claude.Model = "claude-3-5-haiku-latest"
	}
	if c.Translate.BaseURL == "" {
		c.Translate.BaseURL = "https://translation.googleapis.com/language/translate/v2"
	}
	if c.Translate.Timeout == 0 {
		c.Translate.Timeout = 30 * time.Second
	}
	c.Trends.setDefaults()
	if c.Images.BaseURL == "" {
		c.Images.BaseURL = "https://api.unsplash.com"
	}
	if c.Images.Count == 0 {
		c.Images.Count = 4
	}
	if c.Images.Timeout == 0 {
		c.Images.Timeout = 15 * time.Second
	}
	if c.Feeds.MaxEntries == 0 {
		c.Feeds.MaxEntries = 10
	}
	if c.Feeds.Interval == 0 {
		c.Feeds.Interval = 30 * time.Minute
	}
	if c.Feeds.Timeout == 0 {
		c.Feeds.Timeout = 30 * time.Second
	}
	if c.Scheduler.DiscoveryInterval == 0 {
		c.Scheduler.DiscoveryInterval = 5 * time.Minute
	}
	if c.Scheduler.GenerationInterval == 0 {
		c.Scheduler.GenerationInterval = 10 * time.Second
	}
	if c.Scheduler.SweepInterval == 0 {
		c.Scheduler.SweepInterval = time.Minute
	}
	if c.Scheduler.JobTimeout == 0 {
		c.Scheduler.JobTimeout = 5 * time.Minute
	}
	if len(c.Enrichment.Operations) == 0 {
		c.Enrichment.Operations = []domain.Operation{
			domain.OpSummarize, domain.OpCategorize, domain.OpEmbed, domain.OpHashtags,
		}
	}
	if c.Publishing.DefaultHour == 0 {
		c.Publishing.DefaultHour = 12
	}
	if c.Translation.Target == "" {
		c.Translation.Target = "en"
	}
	if c.Translation.Timeout == 0 {
		c.Translation.Timeout = 2 * time.Minute
	}
	if c.Translation.Workers == 0 {
		c.Translation.Workers = 2
	}
	if c.Translation.QueueSize == 0 {
		c.Translation.QueueSize = 100
	}
}

func (t *TrendsConfig) setDefaults() {
	if t.BaseURL == "" {
		t.BaseURL = "https://serpapi.com/search.json"
	}
	if t.Geo == "" {
		t.Geo = "VN"
	}
	if len(t.Topics) == 0 {
		t.Topics = []string{"Việt Nam", "Công Nghệ", "Crypto", "Du lịch"}
	}
	if t.PerTopic == 0 {
		t.PerTopic = 5
	}
	if t.MinKeywords == 0 {
		t.MinKeywords = 10
	}
	if t.MaxKeywords == 0 {
		t.MaxKeywords = 20
	}
	if len(t.Fallback) == 0 {
		t.Fallback = DefaultFallbackKeywords
	}
	if t.Timeout == 0 {
		t.Timeout = 30 * time.Second
	}
	if t.Retry.MaxAttempts == 0 {
		t.Retry.MaxAttempts = 4
	}
	if t.Retry.InitialBackoff == 0 {
		t.Retry.InitialBackoff = 2 * time.Second
	}
	if t.Retry.MaxBackoff == 0 {
		t.Retry.MaxBackoff = 30 * time.Second
	}
}

// DefaultFallbackKeywords seeds discovery when trend lookup yields too little.
var DefaultFallbackKeywords = []string{
	"công nghệ AI", "bóng đá việt nam", "AI trong học đường", "giá vàng việt nam",
	"chứng khoán", "AI 2025", "chatgpt", "trí tuệ nhân tạo", "điện thoại mới",
	"công nghệ blockchain", "AI Agent", "bitcoin", "crypto 2025", "ethereum",
	"giá bitcoin", "đầu tư crypto", "tour du lịch", "du lịch việt nam",
	"khu du lịch", "du lịch hè", "điểm du lịch hot",
}
