package configs

// Redis holds the connection settings for the redis instance backing the
// simulated-day clock. Addr is a URL accepted by redis.ParseURL.
type Redis struct {
	Addr string `env:"ADDRESS" envDefault:"redis://localhost:6379/0"`
}
