package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Payment     GatewayConfig
	Reservation GatewayConfig
}

type AppConfig struct {
	Name    string
	Port    string `validate:"required"`
	Debug   bool
	LogPath string
}

// GatewayConfig points at one of the external collaborators.
type GatewayConfig struct {
	BaseURL        string `validate:"required,url"`
	TimeoutSeconds int    `validate:"min=1"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PAYMENT_TIMEOUT_SECONDS", 5)
	viper.SetDefault("RESERVATION_TIMEOUT_SECONDS", 5)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Payment: GatewayConfig{
			BaseURL:        viper.GetString("PAYMENT_URL"),
			TimeoutSeconds: viper.GetInt("PAYMENT_TIMEOUT_SECONDS"),
		},
		Reservation: GatewayConfig{
			BaseURL:        viper.GetString("RESERVATION_URL"),
			TimeoutSeconds: viper.GetInt("RESERVATION_TIMEOUT_SECONDS"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
