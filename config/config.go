package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Directory holding one JSON file per finalized booking.
	DataDir string `mapstructure:"DATA_DIR"`

	// Presentation currency. All producer payloads quote the same currency;
	// the symbol is only used for display and for stripping price strings.
	CurrencySymbol string `mapstructure:"CURRENCY_SYMBOL"`

	// Simulated payment processing wait. Set to 0 in tests.
	PaymentProcessingDelayMs int `mapstructure:"PAYMENT_PROCESSING_DELAY_MS"`

	MaxDisplayDetails   int `mapstructure:"MAX_DISPLAY_DETAILS"`
	MaxListPreviewItems int `mapstructure:"MAX_LIST_PREVIEW_ITEMS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "./bookings")
	viper.SetDefault("CURRENCY_SYMBOL", "RM")
	viper.SetDefault("PAYMENT_PROCESSING_DELAY_MS", 1000)
	viper.SetDefault("MAX_DISPLAY_DETAILS", 6)
	viper.SetDefault("MAX_LIST_PREVIEW_ITEMS", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
