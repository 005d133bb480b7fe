// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port            string `mapstructure:"port"`
		RequestTimeout  int    `mapstructure:"request_timeout"`  // 秒
		ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // 秒
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Translate struct {
		CredentialsJSON string `mapstructure:"credentials_json"`
		CredentialsFile string `mapstructure:"credentials_file"`
		Endpoint        string `mapstructure:"endpoint"`
	} `mapstructure:"translate"`
	App struct {
		StoreKey         string `mapstructure:"store_key"`
		DefaultNamespace string `mapstructure:"default_namespace"`
		RandomSeed       uint64 `mapstructure:"random_seed"` // 0 ならランダム
		Timezone         string `mapstructure:"timezone"`    // 日付ごとの集計に使う IANA タイムゾーン
	} `mapstructure:"app"`
	Client struct {
		BaseURL string `mapstructure:"base_url"`
		Timeout int    `mapstructure:"timeout"` // 秒
	} `mapstructure:"client"`
}

var Cfg Config

// RequestTimeout はハンドラのタイムアウト
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeout) * time.Second
}

// ShutdownTimeout はグレースフルシャットダウンの猶予
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

// Location は単語を日付で分けるときのタイムゾーン
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// ClientTimeout は API クライアントのタイムアウト
func (c Config) ClientTimeout() time.Duration {
	return time.Duration(c.Client.Timeout) * time.Second
}

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("configs")
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように接頭辞をつけて環境変数から上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// GOOGLE_APPLICATION_CREDENTIALS の慣習にも合わせる
	v.BindEnv("translate.credentials_file", "APP_TRANSLATE_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS")
	// Unmarshal で環境変数だけの値も拾えるようにキーを登録しておく
	for _, key := range []string{
		"database.url", "server.port", "log.level",
		"translate.credentials_json", "translate.endpoint",
		"app.store_key", "app.default_namespace", "app.random_seed", "app.timezone",
		"client.base_url",
	} {
		v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れます
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Database.URL == "" {
		log.Printf("Database URL is not set, using default '%s'", DefaultDatabaseURL)
		cfg.Database.URL = DefaultDatabaseURL
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization", "X-Client-ID"}
	}
	if cfg.App.StoreKey == "" {
		cfg.App.StoreKey = "jindam-words"
	}
	if cfg.App.DefaultNamespace == "" {
		cfg.App.DefaultNamespace = DefaultNamespace
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultTimezone
	}
	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = "http://localhost" + cfg.Server.Port
	}
	if cfg.Client.Timeout <= 0 {
		cfg.Client.Timeout = DefaultClientAPITimeout
	}
}
