package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName           string
	AppVersion        string
	AppPort           string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SQLitePath        string
	SkipDBConnection  bool
	JWTSecret         string
	JWTExpiresIn      time.Duration
	BcryptCost        int
	TrustedProxies    []string
	TranslationFolder string
	SeedDemoData      bool
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		AppName:           v.GetString("APP_NAME"),
		AppVersion:        v.GetString("APP_VERSION"),
		AppPort:           v.GetString("APP_PORT"),
		DbDriver:          strings.ToLower(v.GetString("DB_DRIVER")),
		DbHost:            v.GetString("DB_HOST"),
		DbPort:            v.GetString("DB_PORT"),
		DbUser:            v.GetString("DB_USER"),
		DbPassword:        v.GetString("DB_PASSWORD"),
		DbName:            v.GetString("DB_NAME"),
		DbParams:          v.GetString("DB_PARAMS"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		SkipDBConnection:  v.GetBool("SKIP_DB_CONNECTION"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTExpiresIn:      v.GetDuration("JWT_EXPIRES_IN"),
		BcryptCost:        v.GetInt("BCRYPT_COST"),
		TrustedProxies:    parseTrustedProxies(v.GetString("TRUSTED_PROXIES")),
		TranslationFolder: v.GetString("TRANSLATION_FOLDER"),
		SeedDemoData:      v.GetBool("SEED_DEMO_DATA"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "taskhub")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "db")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "taskhub")
	v.SetDefault("DB_PASSWORD", "taskhub")
	v.SetDefault("DB_NAME", "taskhub")
	v.SetDefault("DB_PARAMS", "")
	v.SetDefault("SQLITE_PATH", "taskhub.db")
	v.SetDefault("SKIP_DB_CONNECTION", false)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("TRANSLATION_FOLDER", "pkg/translator/translation")
	v.SetDefault("SEED_DEMO_DATA", false)
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
