package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Completion struct {
	APIKey  string `yaml:"api_key" env:"CHATAI_API_KEY" env-required:"true"`
	BaseURL string `yaml:"base_url" env:"CHATAI_BASE_URL" env-default:"https://api.perplexity.ai"`
	Model   string `yaml:"model" env:"CHATAI_MODEL" env-default:"sonar"`
}

type History struct {
	Backend string `yaml:"backend" env:"CHATAI_HISTORY_BACKEND" env-default:"file"`
	Path    string `yaml:"path" env:"CHATAI_HISTORY_PATH" env-default:"chat_history.json"`
	// TokenLimit caps the history window sent with each request.
	// Zero keeps the full history, however long the conversation gets.
	TokenLimit int `yaml:"token_limit" env:"CHATAI_HISTORY_TOKEN_LIMIT" env-default:"0"`
}

type Redis struct {
	Endpoint string `yaml:"endpoint" env:"CHATAI_REDIS_ENDPOINT" env-default:"localhost:6379"`
}

type Server struct {
	Addr string `yaml:"addr" env:"CHATAI_SERVER_ADDR" env-default:":8080"`
}

type Config struct {
	// Language selects the console's status-text language; the
	// assistant's replies are always Italian regardless.
	Language   string     `yaml:"language" env:"CHATAI_LANG" env-default:"it"`
	Completion Completion `yaml:"completion"`
	History    History    `yaml:"history"`
	Redis      Redis      `yaml:"redis"`
	Server     Server     `yaml:"server"`
}

func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if cfgPath != "" {
		if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
