package config

import (
	"fmt"
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envJWTSecret     = "MOODMATE_JWT_SECRET"
	envMySQLPassword = "MOODMATE_MYSQL_PASSWORD"
	envChatbotKey    = "MOODMATE_CHATBOT_KEY"
	envQuoteSecret   = "MOODMATE_QUOTE_SECRET"
)

// Load reads the yaml file at filepath and applies secret overrides from the
// process environment. A .env file next to the working directory is loaded
// first when present.
func Load(filepath string) (*ServiceConf, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		hlog.Warnf("load .env err: %v", err)
	}
	conf.applyEnv()

	hlog.Debugf("config debug: %+v", conf.redacted())
	return &conf, nil
}

// MustLoad is Load for process startup.
func MustLoad(filepath string) *ServiceConf {
	conf, err := Load(filepath)
	if err != nil {
		panic(err)
	}
	return conf
}

func (c *ServiceConf) applyEnv() {
	if v := os.Getenv(envJWTSecret); v != "" {
		c.JWT.AccessTokenSecret = v
	}
	if v := os.Getenv(envMySQLPassword); v != "" {
		c.MySQL.Password = v
	}
	if v := os.Getenv(envChatbotKey); v != "" {
		c.Provider.Chatbot.Key = v
	}
	if v := os.Getenv(envQuoteSecret); v != "" {
		c.Provider.Quote.Secret = v
	}
}

func (c ServiceConf) redacted() ServiceConf {
	c.MySQL.Password = "***"
	c.Redis.Password = "***"
	c.JWT.AccessTokenSecret = "***"
	c.Provider.Chatbot.Key = "***"
	c.Provider.Quote.Secret = "***"
	c.Admin.Password = "***"
	return c
}

type ServiceConf struct {
	Server          ServerConf          `yaml:"server"`
	MySQL           MySQLConf           `yaml:"mysql"`
	Redis           RedisConf           `yaml:"redis"`
	JWT             JWTConf             `yaml:"jwt"`
	CORS            CORSConf            `yaml:"cors"`
	RateLimit       []RateLimitConf     `yaml:"rate_limit"`
	Logger          LoggerConf          `yaml:"logger"`
	LoginProtection LoginProtectionConf `yaml:"login_protection"`
	Provider        ProviderConf        `yaml:"provider"`
	Admin           AdminConf           `yaml:"admin"`
}

type ServerConf struct {
	Addr string `yaml:"addr"`
}

type LoginProtectionConf struct {
	WindowSeconds     int `yaml:"window_seconds"`
	Limit             int `yaml:"limit"`
	BlockMinDuration  int `yaml:"block_min_duration"`
	BlockHourDuration int `yaml:"block_hour_duration"`
	LevelDuration     int `yaml:"level_duration"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`

	// when set, sqlite at this path replaces mysql (local runs, tests)
	SQLitePath string `yaml:"sqlite_path"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConf struct {
	Issuer string `yaml:"issuer"`

	AccessTokenSecret string `yaml:"access_token_secret"`

	// seconds; zero means the default 300 minute window
	AccessExpiration int `yaml:"access_expiration"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type RateLimitConf struct {
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Stdout     bool   `yaml:"stdout"`
}

type ProviderConf struct {
	Classifier ClassifierConf `yaml:"classifier"`
	Chatbot    ChatbotConf    `yaml:"chatbot"`
	Quote      QuoteConf      `yaml:"quote"`
}

type ClassifierConf struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type ChatbotConf struct {
	Endpoint  string `yaml:"endpoint"`
	BotID     string `yaml:"bot_id"`
	Key       string `yaml:"key"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type QuoteConf struct {
	Endpoint  string `yaml:"endpoint"`
	Category  string `yaml:"category"`
	Secret    string `yaml:"secret"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// AdminConf seeds the first admin identity when the users table has none.
type AdminConf struct {
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}
