package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App         `mapstructure:",squash"`
	Server        Server      `mapstructure:",squash"`
	Telegram      Telegram    `mapstructure:",squash"`
	Wildberries   Wildberries `mapstructure:",squash"`
	Report        Report      `mapstructure:",squash"`
	WeeklyReport  WeeklyJob   `mapstructure:",squash"`
	MonthlyReport MonthlyJob  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Telegram struct {
	Token  string `mapstructure:"telegram_token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type Wildberries struct {
	BaseURL string `mapstructure:"wb_base_url"`
	APIKey  string `mapstructure:"wb_api_key"`
}

type Report struct {
	AlertThreshold float64 `mapstructure:"alert_threshold"`
	MaxPeriodDays  int     `mapstructure:"max_period_days"`
}

type WeeklyJob struct {
	CronSchedule string `mapstructure:"weekly_report_cron"`
	Enabled      bool   `mapstructure:"weekly_report_enabled"`
}

type MonthlyJob struct {
	CronSchedule string `mapstructure:"monthly_report_cron"`
	Enabled      bool   `mapstructure:"monthly_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("WB_BASE_URL", "https://statistics-api.wildberries.ru/api/v5/supplier")

	viper.SetDefault("ALERT_THRESHOLD", 5000.0) // roubles, large-deduction alert floor
	viper.SetDefault("MAX_PERIOD_DAYS", 365)

	// Report schedules (06:00 UTC == 09:00 MSK)
	viper.SetDefault("WEEKLY_REPORT_CRON", "0 6 * * 1")
	viper.SetDefault("WEEKLY_REPORT_ENABLED", true)
	viper.SetDefault("MONTHLY_REPORT_CRON", "0 6 1 * *")
	viper.SetDefault("MONTHLY_REPORT_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads a .env file through godotenv, trying the usual locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on environment variables")
}
