package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type Config struct {
	Env      string   `yaml:"env" env:"ENV" env-default:"local"`
	Storage  Storage  `yaml:"storage"`
	Postgres Postgres `yaml:"postgres"`
	Mongo    Mongo    `yaml:"mongo"`
	Kafka    Kafka    `yaml:"kafka"`
	Seed     Seed     `yaml:"seed"`
	Server   Server   `yaml:"server"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

type Postgres struct {
	Username        string        `yaml:"username" env:"POSTGRES_USER"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Database        string        `yaml:"database" env:"POSTGRES_DB"`
	SSLMode         string        `yaml:"ssl_mode" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"50"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env-default:"1m"`
	ConnectRetries  int           `yaml:"connect_retries" env-default:"5"`
	RetryInterval   time.Duration `yaml:"retry_interval" env-default:"2s"`
}

// DSN builds a postgres URL with escaped credentials.
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}

	return u.String()
}

type Mongo struct {
	URI        string        `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database   string        `yaml:"database" env:"MONGO_DB" env-default:"directory"`
	Collection string        `yaml:"collection" env-default:"employees"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

// Kafka is optional: with no brokers lifecycle events are dropped.
type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"directory.employee.lifecycle.v1"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Seed struct {
	Path string `yaml:"path" env:"SEED_PATH"`
}

type Server struct {
	Host            string        `yaml:"host" env-default:"localhost"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Load reads the YAML file pointed to by CONFIG_PATH and applies env overrides.
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	return LoadPath(configPath)
}

func LoadPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad is Load for main packages: it panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.Username == "" || c.Postgres.Database == "" {
			return errors.New("postgres username and database are required for the postgres driver")
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return errors.New("mongo uri is required for the mongo driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}
