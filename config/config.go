package config

import (
	"log"
	"os"
)

var cfg *Config

type Config struct {
	Port                   string
	Debug                  bool
	ScyllaHost             string
	ScyllaPort             string
	ScyllaUser             string
	ScyllaPass             string
	ScyllaKeyspace         string
	ScyllaWriteConsistency string
	ScyllaReadConsistency  string
	DebugToken             string
}

func LoadConfig() {
	if cfg != nil {
		return
	}

	cfg = &Config{
		Port:                   os.Getenv("PORT"),
		Debug:                  os.Getenv("APP_DEBUG") == "true",
		ScyllaHost:             os.Getenv("SCYLLA_HOST"),
		ScyllaPort:             os.Getenv("SCYLLA_PORT"),
		ScyllaUser:             os.Getenv("SCYLLA_USER"),
		ScyllaPass:             os.Getenv("SCYLLA_PASSWORD"),
		ScyllaKeyspace:         os.Getenv("SCYLLA_KEYSPACE"),
		ScyllaWriteConsistency: getEnvOr("SCYLLA_WRITE_CONSISTENCY", "QUORUM"),
		ScyllaReadConsistency:  getEnvOr("SCYLLA_READ_CONSISTENCY", "ONE"),
		DebugToken:             os.Getenv("DEBUG_TOKEN"),
	}
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if cfg == nil {
		log.Fatal("Config not loaded — call LoadConfig() first")
	}
	return cfg
}
