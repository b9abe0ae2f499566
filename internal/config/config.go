package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendGridFS   = "gridfs"
	BackendS3       = "s3"
)

var ErrNoMongoURI = errors.New("MONGO_URI is not set")

type Config struct {
	Port      string `mapstructure:"PORT"`
	MaxBodyMB int64  `mapstructure:"MAX_BODY_MB"`

	MetadataBackend string `mapstructure:"METADATA_BACKEND"`
	BlobBackend     string `mapstructure:"BLOB_BACKEND"`

	// --- Mongo ---
	MongoURI     string `mapstructure:"MONGO_URI"`
	MongoDB      string `mapstructure:"MONGO_DB"`
	GridFSBucket string `mapstructure:"GRIDFS_BUCKET"`

	// --- Postgres ---
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     int    `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBScheme   string `mapstructure:"DB_SCHEME"`

	// --- S3 ---
	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3UseSSL    bool   `mapstructure:"S3_USE_SSL"`
	S3PathStyle bool   `mapstructure:"S3_PATH_STYLE"`
}

// String реализует интерфейс Stringer
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Port: %s\n", c.Port))
	sb.WriteString(fmt.Sprintf("  MaxBodyMB: %d\n", c.MaxBodyMB))
	sb.WriteString(fmt.Sprintf("  MetadataBackend: %s\n", c.MetadataBackend))
	sb.WriteString(fmt.Sprintf("  BlobBackend: %s\n", c.BlobBackend))

	// URI может содержать пароль
	if c.MongoURI != "" {
		sb.WriteString("  MongoURI: ********\n")
	} else {
		sb.WriteString("  MongoURI: (empty)\n")
	}
	sb.WriteString(fmt.Sprintf("  MongoDB: %s\n", c.MongoDatabase()))
	sb.WriteString(fmt.Sprintf("  GridFSBucket: %s\n", c.GridFSBucket))

	if c.MetadataBackend == BackendPostgres {
		sb.WriteString(fmt.Sprintf("  DBHost: %s\n", c.DBHost))
		sb.WriteString(fmt.Sprintf("  DBPort: %d\n", c.DBPort))
		sb.WriteString(fmt.Sprintf("  DBUser: %s\n", c.DBUser))
		sb.WriteString(fmt.Sprintf("  DBName: %s\n", c.DBName))
		sb.WriteString(fmt.Sprintf("  DBScheme: %s\n", c.DBScheme))
		if c.DBPassword != "" {
			sb.WriteString("  DBPassword: ********\n")
		} else {
			sb.WriteString("  DBPassword: (empty)\n")
		}
	}

	if c.BlobBackend == BackendS3 {
		sb.WriteString(fmt.Sprintf("  S3Endpoint: %s\n", c.S3Endpoint))
		sb.WriteString(fmt.Sprintf("  S3Region: %s\n", c.S3Region))
		sb.WriteString(fmt.Sprintf("  S3Bucket: %s\n", c.S3Bucket))
		if c.S3AccessKey != "" {
			sb.WriteString("  S3AccessKey: ********\n")
		} else {
			sb.WriteString("  S3AccessKey: (empty)\n")
		}
		if c.S3SecretKey != "" {
			sb.WriteString("  S3SecretKey: ********\n")
		} else {
			sb.WriteString("  S3SecretKey: (empty)\n")
		}
		sb.WriteString(fmt.Sprintf("  S3UseSSL: %v\n", c.S3UseSSL))
		sb.WriteString(fmt.Sprintf("  S3PathStyle: %v\n", c.S3PathStyle))
	}

	return sb.String()
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Загружаем .env только для локальной разработки
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("MAX_BODY_MB", 50)
	v.SetDefault("METADATA_BACKEND", BackendMongo)
	v.SetDefault("BLOB_BACKEND", BackendGridFS)
	v.SetDefault("GRIDFS_BUCKET", "uploads")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "music")
	v.SetDefault("DB_SCHEME", "public")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_BUCKET", "uploads")
	v.SetDefault("S3_PATH_STYLE", true)

	// Регистрируем интересующие ключи окружения
	keys := []string{
		"PORT", "MAX_BODY_MB", "METADATA_BACKEND", "BLOB_BACKEND",
		"MONGO_URI", "MONGO_DB", "GRIDFS_BUCKET",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SCHEME",
		"S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"S3_USE_SSL", "S3_PATH_STYLE",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate проверяет выбранные бэкенды и обязательные параметры подключения
func (c *Config) Validate() error {
	switch c.MetadataBackend {
	case BackendMongo, BackendPostgres:
	default:
		return fmt.Errorf("unknown METADATA_BACKEND %q", c.MetadataBackend)
	}
	switch c.BlobBackend {
	case BackendGridFS, BackendS3:
	default:
		return fmt.Errorf("unknown BLOB_BACKEND %q", c.BlobBackend)
	}
	if c.NeedsMongo() && c.MongoURI == "" {
		return ErrNoMongoURI
	}
	if c.BlobBackend == BackendS3 && c.S3Endpoint == "" {
		return errors.New("S3_ENDPOINT is not set")
	}
	if c.MaxBodyMB <= 0 {
		return fmt.Errorf("MAX_BODY_MB must be positive, got %d", c.MaxBodyMB)
	}
	return nil
}

func (c *Config) NeedsMongo() bool {
	return c.MetadataBackend == BackendMongo || c.BlobBackend == BackendGridFS
}

// MongoDatabase — MONGO_DB, иначе база из URI, иначе "test" (как у драйвера по умолчанию)
func (c *Config) MongoDatabase() string {
	if c.MongoDB != "" {
		return c.MongoDB
	}
	if cs, err := connstring.Parse(c.MongoURI); err == nil && cs.Database != "" {
		return cs.Database
	}
	return "test"
}

func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c *Config) MaxBodyBytes() int64 { return c.MaxBodyMB << 20 }

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
