package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	SalesAPI      SalesAPI      `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	Chart         Chart         `mapstructure:",squash"`
	SalesAPIProbe SalesAPIProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type SalesAPI struct {
	URL     string        `mapstructure:"sales_api_url"`
	Timeout time.Duration `mapstructure:"sales_api_timeout"`
}

// Dashboard contém os limites dos controles do painel
type Dashboard struct {
	MinYear           int `mapstructure:"dashboard_min_year"`
	MaxYear           int `mapstructure:"dashboard_max_year"`
	TopStates         int `mapstructure:"dashboard_top_states"`
	DefaultTopSellers int `mapstructure:"dashboard_default_top_sellers"`
	MinTopSellers     int `mapstructure:"dashboard_min_top_sellers"`
	MaxTopSellers     int `mapstructure:"dashboard_max_top_sellers"`
}

type Chart struct {
	Width  int `mapstructure:"chart_width"`
	Height int `mapstructure:"chart_height"`
}

type SalesAPIProbe struct {
	CronSchedule string `mapstructure:"sales_api_probe_cron"`
	Enabled      bool   `mapstructure:"sales_api_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("SALES_API_URL", "https://labdados.com/produtos")
	viper.SetDefault("SALES_API_TIMEOUT", "45s")

	viper.SetDefault("DASHBOARD_MIN_YEAR", 2020)
	viper.SetDefault("DASHBOARD_MAX_YEAR", 2023)
	viper.SetDefault("DASHBOARD_TOP_STATES", 5)
	viper.SetDefault("DASHBOARD_DEFAULT_TOP_SELLERS", 5)
	viper.SetDefault("DASHBOARD_MIN_TOP_SELLERS", 2)
	viper.SetDefault("DASHBOARD_MAX_TOP_SELLERS", 10)

	viper.SetDefault("CHART_WIDTH", 800)
	viper.SetDefault("CHART_HEIGHT", 450)

	viper.SetDefault("SALES_API_PROBE_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SALES_API_PROBE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

// normalize corrige limites inconsistentes vindos do ambiente
func (c *Config) normalize() {
	if c.Dashboard.MinYear > c.Dashboard.MaxYear {
		logrus.Warnf("DASHBOARD_MIN_YEAR (%d) maior que DASHBOARD_MAX_YEAR (%d), invertendo", c.Dashboard.MinYear, c.Dashboard.MaxYear)
		c.Dashboard.MinYear, c.Dashboard.MaxYear = c.Dashboard.MaxYear, c.Dashboard.MinYear
	}

	if c.Dashboard.MinTopSellers < 1 {
		c.Dashboard.MinTopSellers = 1
	}
	if c.Dashboard.MaxTopSellers < c.Dashboard.MinTopSellers {
		c.Dashboard.MaxTopSellers = c.Dashboard.MinTopSellers
	}
	c.Dashboard.DefaultTopSellers = max(c.Dashboard.MinTopSellers, min(c.Dashboard.DefaultTopSellers, c.Dashboard.MaxTopSellers))

	if c.SalesAPI.Timeout <= 0 {
		c.SalesAPI.Timeout = 45 * time.Second
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
