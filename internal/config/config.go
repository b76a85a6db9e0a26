package config

import (
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// BaseURL is the root of the remote Spacebook API, including the version
	// prefix.
	BaseURL string
	// DbUrl is the path to the local database file holding the session and
	// draft posts.
	DbUrl string
	// MigrationsFolder is the directory containing the local store's schema
	// migrations.
	MigrationsFolder string
	// PhotoCacheDir is where fetched profile photos are kept.
	PhotoCacheDir string
	// RequestTimeout bounds every HTTP exchange. Zero disables the bound.
	RequestTimeout time.Duration
	// Debug, if true, will make the application log all requests and other
	// events.
	Debug bool
}

func ReadConfig() (Configuration, error) {
	viper.SetDefault("BASE_URL", "http://localhost:3333/api/1.0.0")
	viper.SetDefault("DB_URL", "spacebook.db")
	viper.SetDefault("MIGRATIONS_FOLDER", "migrations")
	viper.SetDefault("PHOTO_CACHE_DIR", "photos")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("DEBUG", false)

	viper.SetEnvPrefix("spacebook")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Configuration{}, err
		}
	}

	return Configuration{
		BaseURL:          viper.GetString("BASE_URL"),
		DbUrl:            viper.GetString("DB_URL"),
		MigrationsFolder: viper.GetString("MIGRATIONS_FOLDER"),
		PhotoCacheDir:    viper.GetString("PHOTO_CACHE_DIR"),
		RequestTimeout:   viper.GetDuration("REQUEST_TIMEOUT"),
		Debug:            viper.GetBool("DEBUG"),
	}, nil
}
