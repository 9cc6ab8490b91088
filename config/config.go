package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Booking  BookingConfig  `yaml:"booking"`
	Movie    MovieConfig    `yaml:"movie"`
	User     UserConfig     `yaml:"user"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Clients  ClientsConfig  `yaml:"clients"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Database DatabaseConfig `yaml:"database"`
	Mongo    MongoConfig    `yaml:"mongo"`
}

type BookingConfig struct {
	HTTPAddress string `yaml:"http_address"`
	// Storage selects the ledger backend: file, mongo or postgres.
	Storage    string `yaml:"storage"`
	LedgerPath string `yaml:"ledger_path"`
}

type MovieConfig struct {
	HTTPAddress string `yaml:"http_address"`
	DataDir     string `yaml:"data_dir"`
}

type UserConfig struct {
	HTTPAddress string `yaml:"http_address"`
	Path        string `yaml:"path"`
}

type ScheduleConfig struct {
	GRPCAddress string `yaml:"grpc_address"`
	Path        string `yaml:"path"`
}

type ClientsConfig struct {
	MovieBaseURL         string `yaml:"movie_base_url"`
	UserBaseURL          string `yaml:"user_base_url"`
	ScheduleAddress      string `yaml:"schedule_address"`
	TimeoutSeconds       int    `yaml:"timeout_seconds"`
	MovieCacheTTLSeconds int    `yaml:"movie_cache_ttl_seconds"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
