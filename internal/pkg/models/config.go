package models

// Config holds the full application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon configuration
type NSQConfig struct {
	Address         string
	LookupAddresses []string
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// DispatchConfig holds the dispatch engine tunables.
//
// AverageSpeedMps is the assumed cab speed used to turn path distance into an
// ETA. StalenessWindow excludes cabs whose last location ping is older than
// the given number of seconds; zero disables the filter.
type DispatchConfig struct {
	GraphPath        string
	AverageSpeedMps  float64
	StalenessWindow  int
	AutoComplete     bool
	LocationCacheTTL int // seconds
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
