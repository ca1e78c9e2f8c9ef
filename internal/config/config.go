package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnv     = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// New reads the YAML file (if present) on top of the defaults and then applies
// environment overrides.
func New() (*Service, error) {
	path := os.Getenv(configFileEnv)
	if path == "" {
		path = defaultConfigFile
	}
	return FromFile(path)
}

func FromFile(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, errors.Wrap(err, "reading config file")
	default:
		err = yaml.Unmarshal(rawYAML, &s.config)
		if err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	if err = s.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		Telegram: TelegramConfig{
			UpdatesMode: ModeWebhook,
		},
		App: AppConfig{
			StorageKind:     StoragePostgres,
			Location:        "Asia/Jakarta",
			Timeout:         5 * time.Second,
			DefaultCategory: "lainnya",
		},
		Server: ServerConfig{
			Address:  ":8080",
			Webhook:  "/telegram-webhook",
			Shutdown: 10 * time.Second,
		},
		Postgres: PostgresConfig{
			Hostname: "localhost",
			PortNum:  5432,
			SSL:      "disable",
			MaxConns: 10,
		},
		Kafka: KafkaConfig{
			EventsTopicName: "expense-events",
		},
		Jaeger: JaegerConfig{
			Name: "expense-bot",
		},
	}
}

func (s *Service) applyEnv() error {
	c := &s.config

	setString(&c.Postgres.Hostname, "DB_HOST")
	setString(&c.Postgres.Db, "DB_NAME")
	setString(&c.Postgres.User, "DB_USER")
	setString(&c.Postgres.Pswd, "DB_PASSWORD")
	setString(&c.Postgres.SSL, "DB_SSLMODE")
	if err := setInt(&c.Postgres.PortNum, "DB_PORT"); err != nil {
		return err
	}

	setString(&c.Telegram.ApiToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Telegram.WebhookLink, "TELEGRAM_WEBHOOK_URL")
	setString(&c.Telegram.UpdatesMode, "TELEGRAM_MODE")

	if port := os.Getenv("PORT"); port != "" {
		c.Server.Address = ":" + port
	}

	setString(&c.App.StorageKind, "STORAGE")
	setString(&c.App.Location, "TIMEZONE")
	if err := setDuration(&c.App.Timeout, "REQUEST_TIMEOUT"); err != nil {
		return err
	}

	setList(&c.Kafka.BrokerList, "KAFKA_BROKERS")
	setList(&c.Memcached.NodeHosts, "MEMCACHED_HOSTS")
	setString(&c.Jaeger.Agent, "JAEGER_AGENT")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = i
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = d
	return nil
}

func setList(dst *[]string, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	var res []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	*dst = res
}

// Validate returns every problem found, not just the first one.
func (s *Service) Validate() error {
	c := &s.config
	var problems []string

	if c.Telegram.ApiToken == "" {
		problems = append(problems, "telegram token is required")
	}
	switch c.Telegram.UpdatesMode {
	case ModeWebhook, ModePolling:
	default:
		problems = append(problems, fmt.Sprintf("unknown telegram mode %q", c.Telegram.UpdatesMode))
	}

	switch c.App.StorageKind {
	case StoragePostgres:
		if c.Postgres.Db == "" {
			problems = append(problems, "postgres database name is required")
		}
		if c.Postgres.PortNum < 1 || c.Postgres.PortNum > 65535 {
			problems = append(problems, fmt.Sprintf("invalid postgres port %d", c.Postgres.PortNum))
		}
	case StorageMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage %q", c.App.StorageKind))
	}

	if _, err := time.LoadLocation(c.App.Location); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone %q", c.App.Location))
	}
	if c.App.Timeout <= 0 {
		problems = append(problems, "request timeout must be positive")
	}
	for i, rule := range c.App.CategoryRules {
		if rule.Name == "" || len(rule.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("category #%d needs a name and keywords", i+1))
		}
	}

	if !strings.HasPrefix(c.Server.Webhook, "/") {
		problems = append(problems, "webhook path must start with /")
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid config:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
