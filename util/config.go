package util

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	NAIToken          string        `mapstructure:"NAI_TOKEN"`
	GalleryDir        string        `mapstructure:"GALLERY_DIR"`
	TaskQueueSize     int           `mapstructure:"TASK_QUEUE_SIZE"`
	TaskStatusTTL     time.Duration `mapstructure:"TASK_STATUS_TTL"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
