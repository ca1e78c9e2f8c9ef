package config

const (
	ModeWebhook = "webhook"
	ModePolling = "polling"
)

type TelegramConfig struct {
	ApiToken    string `yaml:"token"`
	WebhookLink string `yaml:"webhook-url"`
	UpdatesMode string `yaml:"mode"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

// WebhookURL is the public URL registered with Telegram, empty skips registration.
func (t *TelegramConfig) WebhookURL() string {
	return t.WebhookLink
}

func (t *TelegramConfig) Mode() string {
	return t.UpdatesMode
}
