package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PublicURL is the externally reachable base URL used in download links.
	// When empty the API tries the local ngrok agent.
	PublicURL string
	Ngrok     NgrokConfig

	// Assistant pipeline
	Assistant    AssistantConfig
	Topics       []TopicConfig
	Fetcher      FetcherConfig
	Conversation ConversationConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Channels
	WhatsApp WhatsAppConfig
	Telegram TelegramConfig
	Desktop  DesktopConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type NgrokConfig struct {
	APIURL string
}

// AssistantConfig holds the persona and reply policy.
type AssistantConfig struct {
	Persona            string
	DefaultLanguage    string
	MinConfidence      float64
	Languages          []string // ISO 639-3 codes the detector may answer with
	Temperature        float64
	FallbackText       string // appended when the model signals uncertainty
	SeeMoreTemplate    string // fmt template, %s = matched topic URL
	ErrorReplyTemplate string // fmt template, %v = LLM error
	UncertaintyMarkers []string
	WebSearchKeywords  []string
}

// TopicConfig is one keyword → URL row; order is priority.
type TopicConfig struct {
	Keyword string
	URL     string
}

type FetcherConfig struct {
	Timeout   time.Duration
	MaxChars  int
	UserAgent string
}

type ConversationConfig struct {
	Driver     string // "file" or "sqlite"
	Dir        string
	SQLitePath string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
}

type WhatsAppConfig struct {
	AuthToken         string
	ValidateSignature bool
	RateLimitPerMin   int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type DesktopConfig struct {
	UserID string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.PublicURL = strings.TrimRight(v.GetString("public_url"), "/")
	cfg.Ngrok.APIURL = v.GetString("ngrok.api_url")

	// Assistant
	cfg.Assistant.Persona = v.GetString("assistant.persona")
	cfg.Assistant.DefaultLanguage = v.GetString("assistant.default_language")
	cfg.Assistant.MinConfidence = v.GetFloat64("assistant.min_confidence")
	cfg.Assistant.Languages = v.GetStringSlice("assistant.languages")
	cfg.Assistant.Temperature = v.GetFloat64("assistant.temperature")
	cfg.Assistant.FallbackText = v.GetString("assistant.fallback_text")
	cfg.Assistant.SeeMoreTemplate = v.GetString("assistant.see_more_template")
	cfg.Assistant.ErrorReplyTemplate = v.GetString("assistant.error_reply_template")
	cfg.Assistant.UncertaintyMarkers = v.GetStringSlice("assistant.uncertainty_markers")
	cfg.Assistant.WebSearchKeywords = v.GetStringSlice("assistant.web_search_keywords")
	if err := validateTemplate("assistant.see_more_template", cfg.Assistant.SeeMoreTemplate); err != nil {
		return nil, err
	}
	if err := validateTemplate("assistant.error_reply_template", cfg.Assistant.ErrorReplyTemplate); err != nil {
		return nil, err
	}

	for _, m := range mapSlice(v.Get("topics")) {
		t := TopicConfig{
			Keyword: getStringFromMap(m, "keyword"),
			URL:     getStringFromMap(m, "url"),
		}
		if t.Keyword == "" || t.URL == "" {
			return nil, fmt.Errorf("topic entry requires keyword and url: %v", m)
		}
		cfg.Topics = append(cfg.Topics, t)
	}

	cfg.Fetcher.Timeout = v.GetDuration("fetcher.timeout")
	cfg.Fetcher.MaxChars = v.GetInt("fetcher.max_chars")
	cfg.Fetcher.UserAgent = v.GetString("fetcher.user_agent")

	cfg.Conversation.Driver = v.GetString("conversation.driver")
	cfg.Conversation.Dir = v.GetString("conversation.dir")
	cfg.Conversation.SQLitePath = v.GetString("conversation.sqlite_path")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")

	for _, m := range mapSlice(v.Get("llm.providers")) {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:     getStringFromMap(m, "name"),
			Enabled:  getBoolFromMap(m, "enabled"),
			Priority: getIntFromMap(m, "priority"),
			APIKey:   expandEnvVar(v, getStringFromMap(m, "api_key")),
			BaseURL:  getStringFromMap(m, "base_url"),
			Model:    getStringFromMap(m, "model"),
		})
	}
	// GEMINI_API_KEY alone is enough for the default single-provider setup.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    v.GetString("gemini_model"),
			}}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Channels
	cfg.WhatsApp.AuthToken = expandEnvVar(v, v.GetString("whatsapp.auth_token"))
	if token := v.GetString("twilio_auth_token"); token != "" {
		cfg.WhatsApp.AuthToken = token
	}
	cfg.WhatsApp.ValidateSignature = v.GetBool("whatsapp.validate_signature")
	cfg.WhatsApp.RateLimitPerMin = v.GetInt("whatsapp.rate_limit_per_min")

	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Desktop.UserID = v.GetString("desktop.user_id")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("ngrok.api_url", "http://127.0.0.1:4040")

	v.SetDefault("assistant.persona", DefaultPersona)
	v.SetDefault("assistant.default_language", "en")
	v.SetDefault("assistant.min_confidence", 0.5)
	v.SetDefault("assistant.languages", []string{"spa", "eng"})
	v.SetDefault("assistant.temperature", 0.7)
	v.SetDefault("assistant.fallback_text", DefaultFallbackText)
	v.SetDefault("assistant.see_more_template", DefaultSeeMoreTemplate)
	v.SetDefault("assistant.error_reply_template", DefaultErrorReplyTemplate)
	v.SetDefault("assistant.uncertainty_markers", DefaultUncertaintyMarkers)
	v.SetDefault("assistant.web_search_keywords", DefaultWebSearchKeywords)
	v.SetDefault("topics", DefaultTopics())

	v.SetDefault("fetcher.timeout", "10s")
	v.SetDefault("fetcher.max_chars", 1500)
	v.SetDefault("fetcher.user_agent", "Mozilla/5.0")

	v.SetDefault("conversation.driver", "file")
	v.SetDefault("conversation.dir", "conversations")
	v.SetDefault("conversation.sqlite_path", "conversations.db")

	// LLM defaults: a single attempt, no fallback
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("gemini_model", "gemini-2.5-flash")

	v.SetDefault("whatsapp.validate_signature", false)
	v.SetDefault("whatsapp.rate_limit_per_min", 30)

	v.SetDefault("desktop.user_id", "desktop")
}

// expandEnvVar expands values in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateTemplate requires tmpl to take exactly one argument.
func validateTemplate(key, tmpl string) error {
	if strings.Contains(fmt.Sprintf(tmpl, "x"), "%!") {
		return fmt.Errorf("%s must contain exactly one format verb such as %%s: %q", key, tmpl)
	}
	return nil
}

func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - set GEMINI_API_KEY or add llm.providers to config.yaml")
	}

	enabledCount := 0
	priorities := make(map[int]bool)
	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorities[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorities[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// mapSlice normalizes a viper list of objects; YAML yields []interface{},
// defaults set in Go yield []map[string]interface{}.
func mapSlice(raw interface{}) []map[string]interface{} {
	switch list := raw.(type) {
	case []map[string]interface{}:
		return list
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
