package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	Database    Database    `yaml:"database"`
	BlobStorage BlobStorage `yaml:"blob_storage"`
	Kafka       Kafka       `yaml:"kafka"`
	Records     Records     `yaml:"records"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"crack_keeper"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type BlobStorage struct {
	Endpoint  string `yaml:"endpoint" env-default:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"BLOB_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"BLOB_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env-default:"crack-images"`
	UseSSL    bool   `yaml:"use_ssl" env-default:"false"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env-default:"crack-record-events"`
	GroupID string   `yaml:"group_id" env-default:"crack-keeper-audit"`
}

type Records struct {
	PageSize int `yaml:"page_size" env-default:"20"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
