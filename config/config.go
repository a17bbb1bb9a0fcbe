package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var once sync.Once

func InitConfig() {
	once.Do(func() {
		_ = godotenv.Load()

		viper.AutomaticEnv()

		viper.BindEnv("port", "PORT")
		viper.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
		viper.BindEnv("database_path", "DATABASE_PATH")
		viper.BindEnv("exchange_suffix", "EXCHANGE_SUFFIX")
		viper.BindEnv("quote_base_url", "QUOTE_BASE_URL")
		viper.BindEnv("debug", "DEBUG")
		viper.BindEnv("lang", "LANG")

		viper.SetDefault("port", 8080)
		viper.SetDefault("database_path", "data/bot.db")
		viper.SetDefault("exchange_suffix", ".NS")
		viper.SetDefault("quote_base_url", "https://query1.finance.yahoo.com")
		viper.SetDefault("debug", false)
		viper.SetDefault("lang", "en")
	})
}

func GetString(key string) string {
	InitConfig()
	return viper.GetString(key)
}

func GetInt(key string) int {
	InitConfig()
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	InitConfig()
	return viper.GetBool(key)
}
