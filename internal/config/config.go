// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type AppConfig struct {
	LessonBatchSize int `mapstructure:"lesson_batch_size"`
	ReviewLimit     int `mapstructure:"review_limit"`
	PracticeLimit   int `mapstructure:"practice_limit"`
}

type JWTConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type SessionConfig struct {
	TTLHours int `mapstructure:"ttl_hours"`
}

type MailerConfig struct {
	Driver          string `mapstructure:"driver"` // "log" or "ses"
	From            string `mapstructure:"from"`
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App     AppConfig     `mapstructure:"app"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Session SessionConfig `mapstructure:"session"`
	Mailer  MailerConfig  `mapstructure:"mailer"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数でも上書き可能 (例: APP_DATABASE_URL, APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.LessonBatchSize <= 0 {
		Cfg.App.LessonBatchSize = DefaultLessonBatchSize
	}
	if Cfg.App.ReviewLimit <= 0 {
		Cfg.App.ReviewLimit = DefaultReviewLimit
	}
	if Cfg.App.PracticeLimit <= 0 {
		Cfg.App.PracticeLimit = DefaultPracticeLimit
	}
	if Cfg.JWT.ExpiryHours <= 0 {
		Cfg.JWT.ExpiryHours = DefaultJWTExpiryHours
	}
	if Cfg.Session.TTLHours <= 0 {
		Cfg.Session.TTLHours = DefaultSessionTTLHours
	}
	if Cfg.Mailer.Driver == "" {
		Cfg.Mailer.Driver = "log"
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set. Tokens cannot be issued.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Lesson Batch Size: %d", Cfg.App.LessonBatchSize)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)
	log.Printf("Practice Limit: %d", Cfg.App.PracticeLimit)

	return nil
}
