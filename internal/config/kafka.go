package config

type KafkaConfig struct {
	BrokerList      []string `yaml:"brokers"`
	EventsTopicName string   `yaml:"events-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) EventsTopic() string {
	return s.EventsTopicName
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
