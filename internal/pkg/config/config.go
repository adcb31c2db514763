package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file plus the process
// environment. Environment variables always win so deployments can override
// the file without editing it.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		logrus.WithError(err).Warn("no config file loaded, using environment only")
	}

	setDefaults(v)
	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "cabdispatch")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")

	v.SetDefault("JWT_EXPIRATION", 1440)

	v.SetDefault("DISPATCH_GRAPH_PATH", "data/campus_graph.json")
	v.SetDefault("DISPATCH_AVERAGE_SPEED_MPS", 8.33)
	v.SetDefault("DISPATCH_STALENESS_WINDOW", 300)
	v.SetDefault("DISPATCH_AUTO_COMPLETE", true)
	v.SetDefault("DISPATCH_LOCATION_CACHE_TTL", 86400)

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	if lookupds := v.GetString("NSQ_LOOKUP_ADDRESSES"); lookupds != "" {
		configs.NSQ.LookupAddresses = strings.Split(lookupds, ",")
	}

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Dispatch.GraphPath = v.GetString("DISPATCH_GRAPH_PATH")
	configs.Dispatch.AverageSpeedMps = v.GetFloat64("DISPATCH_AVERAGE_SPEED_MPS")
	configs.Dispatch.StalenessWindow = v.GetInt("DISPATCH_STALENESS_WINDOW")
	configs.Dispatch.AutoComplete = v.GetBool("DISPATCH_AUTO_COMPLETE")
	configs.Dispatch.LocationCacheTTL = v.GetInt("DISPATCH_LOCATION_CACHE_TTL")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
