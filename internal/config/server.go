package config

import "time"

type ServerConfig struct {
	Address  string        `yaml:"address"`
	Webhook  string        `yaml:"webhook-path"`
	Shutdown time.Duration `yaml:"shutdown-timeout"`
}

func (s *ServerConfig) Addr() string {
	return s.Address
}

func (s *ServerConfig) WebhookPath() string {
	return s.Webhook
}

func (s *ServerConfig) ShutdownTimeout() time.Duration {
	return s.Shutdown
}
