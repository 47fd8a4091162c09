// api/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Database      DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Push          PushConfiguration
	App           AppConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for the audit log sink
type ElasticsearchConfiguration struct {
	URL string
}

// PushConfiguration stores data for the push notification gateway
type PushConfiguration struct {
	URL    string
	APIKey string
}

// AppConfiguration stores platform-wide application settings
type AppConfiguration struct {
	Version string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("db.dsn", "host=localhost user=studyadmin dbname=participant_manager port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("push.url", "https://fcm.googleapis.com/fcm/send")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("app.version", "1.0")
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}
