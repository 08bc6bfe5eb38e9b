package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	WeatherAPIKey   string
}

var Env *EnvConfig

func init() {
	// A .env file is optional; the key may come from the real environment.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "skycast"),
		WeatherAPIKey:   viper.GetString("OPENWEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
