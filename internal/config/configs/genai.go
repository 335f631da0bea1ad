package configs

// GenAI configures the completions API used for ad-text moderation and
// generation. BaseURL is the API root, e.g. https://api.example.com/v1.
type GenAI struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
}
