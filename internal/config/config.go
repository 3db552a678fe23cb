package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type SyncConfig struct {
	Env          string `yaml:"env" env:"SYNC_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	SyncDB       `yaml:"sync_db"`
	Migrations   `yaml:"migrations"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Petpooja     `yaml:"petpooja"`
	Background   `yaml:"background"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type SyncDB struct {
	Dsn string `yaml:"dsn" env:"SYNC_DB_DSN" env-required:"true"`
}

type Migrations struct {
	Path string `yaml:"path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"KAFKA_HOST"`
	Port    string `yaml:"port" env:"KAFKA_PORT"`
	Topic   string `yaml:"topic" env:"KAFKA_SYNC_TOPIC" env-default:"sync-events"`
}

type Petpooja struct {
	BaseURL      string        `yaml:"base_url" env:"PETPOOJA_BASE_URL" env-default:"https://pponlineordercb.petpooja.com"`
	MenuPath     string        `yaml:"menu_path" env-default:"/mapped_restaurant_menus"`
	CategoryPath string        `yaml:"category_path" env-default:"/get_categories"`
	OrderPath    string        `yaml:"order_path" env-default:"/save_order"`
	CallbackURL  string        `yaml:"callback_url" env:"PETPOOJA_CALLBACK_URL"`
	Timeout      time.Duration `yaml:"timeout" env:"PETPOOJA_TIMEOUT" env-default:"30s"`
}

type Background struct {
	// Zero disables the periodic order push.
	OrderPushInterval time.Duration `yaml:"order_push_interval" env:"ORDER_PUSH_INTERVAL" env-default:"0s"`
}

func MustLoad() *SyncConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SYNC_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SYNC_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*SyncConfig, error) {
	var cfg SyncConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
