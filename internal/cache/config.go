package cache

// Config - redis cache configuration
type Config struct {
	Host     string
	Port     string
	Password string
}
