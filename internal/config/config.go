package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Gemini    GeminiConfig
	Qdrant    QdrantConfig
	Storage   StorageConfig
	Worker    WorkerConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string `env:"PORT" env-default:"8000"`
	Env          string `env:"ENV" env-default:"development"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	AllowOrigins string `env:"CORS_ALLOW_ORIGINS" env-default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName   string `env:"DB_NAME" env-default:"placement_tracker"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

// RedisConfig is optional. An empty Addr keeps the embedding cache in memory.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" env-default:""`
	Password string        `env:"REDIS_PASSWORD" env-default:""`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `env:"EMBEDDING_CACHE_TTL" env-default:"24h"`
	LRUSize  int           `env:"EMBEDDING_CACHE_SIZE" env-default:"512"`
}

// KafkaConfig is optional. No brokers means events are dropped.
type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:"," env-default:""`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"placement-events"`
}

type GeminiConfig struct {
	APIKey          string `env:"GEMINI_API_KEY" env-default:""`
	EmbeddingModel  string `env:"GEMINI_EMBEDDING_MODEL" env-default:"text-embedding-004"`
	TranscribeModel string `env:"GEMINI_TRANSCRIBE_MODEL" env-default:"gemini-2.5-flash"`
}

type QdrantConfig struct {
	Enabled    bool   `env:"QDRANT_ENABLED" env-default:"false"`
	URL        string `env:"QDRANT_URL" env-default:"http://localhost:6334"`
	APIKey     string `env:"QDRANT_API_KEY" env-default:""`
	Collection string `env:"QDRANT_COLLECTION" env-default:"question_bank"`
	VectorSize uint64 `env:"QDRANT_VECTOR_SIZE" env-default:"768"`
}

type StorageConfig struct {
	UploadPath  string `env:"UPLOAD_PATH" env-default:"./uploads"`
	MaxFileSize int64  `env:"MAX_FILE_SIZE" env-default:"10485760"`
}

type WorkerConfig struct {
	Concurrency  int           `env:"WORKER_CONCURRENCY" env-default:"2"`
	PollInterval time.Duration `env:"WORKER_POLL_INTERVAL" env-default:"30s"`
	BatchSize    int           `env:"WORKER_BATCH_SIZE" env-default:"20"`
}

type RateLimitConfig struct {
	Max        int           `env:"RATE_LIMIT_MAX" env-default:"20"`
	Expiration time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, reading process environment only")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.Kafka.Brokers = compact(cfg.Kafka.Brokers)

	return &cfg, nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
