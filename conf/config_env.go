package conf

import (
	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port              string `env:"PORT" envDefault:"8081"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"text"`
	MongoURI          string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB           string `env:"MONGO_DB" envDefault:"agrifresh"`
	EnableDB          string `env:"ENABLE_DB" envDefault:"true"`
	EnableFallback    string `env:"ENABLE_FALLBACK" envDefault:"true"`
	JWTSecret         string `env:"JWT_SECRET" envDefault:"agrifresh-dev-secret"`
	NumHourExpToken   int    `env:"NUM_HOUR_EXP_TOKEN" envDefault:"24"`
	NotifyWebhook     string `env:"NOTIFY_WEBHOOK" envDefault:""`
	DeliveryETAHours  int    `env:"DELIVERY_ETA_HOURS" envDefault:"48"`
	NotificationLimit int64  `env:"NOTIFICATION_LIMIT" envDefault:"50"`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}
