package config

type JaegerConfig struct {
	Name  string `yaml:"service-name"`
	Agent string `yaml:"agent"`
}

func (s *JaegerConfig) ServiceName() string {
	return s.Name
}

// AgentHostPort is empty when tracing is disabled.
func (s *JaegerConfig) AgentHostPort() string {
	return s.Agent
}
