package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// Configured reports whether enough connection parameters are present to
// attempt a database connection. The app runs storage-less otherwise.
func (config *DbServer) Configured() bool {
	return config.Host != "" && config.Name != ""
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TickerTimeoutSeconds int `mapstructure:"ticker_timeout_seconds"`
	ScrapeTimeoutSeconds int `mapstructure:"scrape_timeout_seconds"`
	ChartTimeoutSeconds  int `mapstructure:"chart_timeout_seconds"`
}

type Providers struct {
	ChartBaseURL string `mapstructure:"chart_base_url"`
	BithumbURL   string `mapstructure:"bithumb_url"`
	NaverURL     string `mapstructure:"naver_url"`
	InvestingURL string `mapstructure:"investing_url"`
}

type Cache struct {
	TickerTTLSeconds int `mapstructure:"ticker_ttl_seconds"`
	ScrapeTTLSeconds int `mapstructure:"scrape_ttl_seconds"`
	PeriodTTLSeconds int `mapstructure:"period_ttl_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Providers  Providers  `mapstructure:"providers"`
	Cache      Cache      `mapstructure:"cache"`
	Logging    Logging    `mapstructure:"logging"`
	CORS       CORS       `mapstructure:"cors"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional; a missing file means env vars come from the host.
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		// config.yaml is optional too; defaults and env vars are enough to run.
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("http_server.port", "8000")
	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.ticker_timeout_seconds", 5)
	viper.SetDefault("http_client.scrape_timeout_seconds", 7)
	viper.SetDefault("http_client.chart_timeout_seconds", 30)
	viper.SetDefault("cache.ticker_ttl_seconds", 120)
	viper.SetDefault("cache.scrape_ttl_seconds", 180)
	viper.SetDefault("cache.period_ttl_seconds", 3600)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("providers.chart_base_url", "https://query1.finance.yahoo.com")
	viper.SetDefault("providers.bithumb_url", "https://api.bithumb.com/public/ticker/USDT_KRW")
	viper.SetDefault("providers.naver_url", "https://finance.naver.com/marketindex/")
	viper.SetDefault("providers.investing_url", "https://kr.investing.com/currencies/exchange-rates-table")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// provider env vars
	_ = viper.BindEnv("providers.chart_base_url", "CHART_BASE_URL")
	_ = viper.BindEnv("providers.bithumb_url", "BITHUMB_URL")
	_ = viper.BindEnv("providers.naver_url", "NAVER_URL")
	_ = viper.BindEnv("providers.investing_url", "INVESTING_URL")

	_ = viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
