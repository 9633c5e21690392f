package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Consul   ConsulConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port           string
	ServiceName    string
	ServiceAddress string
	ServiceID      string
}

type MongoDBConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Address    string
	Password   string
	DB         int
	CatalogTTL time.Duration
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

type ConsulConfig struct {
	Enabled bool
	Address string
}

// ScoringConfig carries the externally adjustable scoring tunables. Zero
// values mean "use the documented default".
type ScoringConfig struct {
	MajorDifferenceThreshold int
	StrengthAreaCount        int
	VulnerabilityAreaCount   int
	ScoreGapPenalty          float64
	DifferingAnswerPenalty   float64
	MajorDifferencePenalty   float64
	ImportWorkers            int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "6680"),
			ServiceName:    getEnv("ASSESSMENT_SERVICE_NAME", "assessment-service"),
			ServiceAddress: getEnv("ASSESSMENT_SERVICE_ADDRESS", "assessment-service"),
			ServiceID:      getEnv("ASSESSMENT_SERVICE_NAME", "assessment-service") + "-" + getEnv("HOSTNAME", "assessment"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "assessment_service"),
		},
		Redis: RedisConfig{
			Address:    getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			CatalogTTL: getEnvAsDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", ""),
		},
		Consul: ConsulConfig{
			Enabled: getEnvAsBool("CONSUL_ENABLED", false),
			Address: getEnv("CONSUL_ADDR", "consul-server:8500"),
		},
		Scoring: ScoringConfig{
			MajorDifferenceThreshold: getEnvAsInt("MAJOR_DIFF_THRESHOLD", 0),
			StrengthAreaCount:        getEnvAsInt("STRENGTH_AREA_COUNT", 0),
			VulnerabilityAreaCount:   getEnvAsInt("VULNERABILITY_AREA_COUNT", 0),
			ScoreGapPenalty:          getEnvAsFloat("SCORE_GAP_PENALTY", 0),
			DifferingAnswerPenalty:   getEnvAsFloat("DIFFERING_ANSWER_PENALTY", 0),
			MajorDifferencePenalty:   getEnvAsFloat("MAJOR_DIFF_PENALTY", 0),
			ImportWorkers:            getEnvAsInt("IMPORT_WORKERS", 8),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("invalid int env var %s: %s", key, err)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Printf("invalid float env var %s: %s", key, err)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("invalid bool env var %s: %s", key, err)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("invalid duration env var %s: %s", key, err)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}
