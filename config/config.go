package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Hazen1Yang/pathfinder-backend/models"
)

type Config struct {
	Addr string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	// DataDir holds the static catalogs; LocalStoreDir holds the per-device
	// goal files.
	DataDir       string
	LocalStoreDir string

	AWSRegion string
	SESEmail  string

	// AllowedOrigins are the cross-origin hosts admitted to the websocket
	// feed; same-host requests are always allowed.
	AllowedOrigins []string
}

// Load reads .env when present, then the environment. Only the JWT secret
// and database coordinates are required; everything else has a default.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getenv("ADDR", ":8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenv("DB_PORT", "5432"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DataDir:       getenv("DATA_DIR", "data"),
		LocalStoreDir: getenv("LOCAL_STORE_DIR", "localstore"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		SESEmail:      os.Getenv("SES_EMAIL"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return Config{}, errors.New("DB_HOST, DB_USER and DB_NAME are required")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// OpenDB connects to Postgres and migrates the schema.
func OpenDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.DailyTaskRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
