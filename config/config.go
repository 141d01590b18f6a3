package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME" default:"popflea"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-Admin-Key"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE" default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable           bool `envconfig:"ENABLE"`
			MaxRequests      int  `envconfig:"MAX_REQUESTS" default:"30"`
			WriteMaxRequests int  `envconfig:"WRITE_MAX_REQUESTS" default:"10"`
			WindowSeconds    int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		AdminKey string `envconfig:"ADMIN_KEY"`
	} `envconfig:"APP"`

	// Event holds everything that defines one run of the flea market:
	// which dates can be booked, which hourly slots exist, and how many
	// adults each seating area can hold. Handlers and services read these
	// from here and nowhere else.
	Event struct {
		Venue             string   `envconfig:"VENUE" default:"Cafe The Cartel, Vidyapati Marg, Patna"`
		Dates             []string `envconfig:"DATES" default:"2025-12-24,2025-12-25,2025-12-26"`
		TimeSlots         []string `envconfig:"TIME_SLOTS" default:"16:00,17:00,18:00,19:00,20:00,21:00"`
		IndoorLimit       int      `envconfig:"INDOOR_LIMIT" default:"16"`
		LibraryLimit      int      `envconfig:"LIBRARY_LIMIT" default:"4"`
		RequirePayment    bool     `envconfig:"REQUIRE_PAYMENT" default:"true"`
		ReimbursementNote string   `envconfig:"REIMBURSEMENT_NOTE" default:"Your booking amount is adjusted against your bill at the venue."`
	} `envconfig:"EVENT"`

	Sheets struct {
		ClientEmail   string `envconfig:"CLIENT_EMAIL"`
		PrivateKey    string `envconfig:"PRIVATE_KEY"`
		SpreadsheetID string `envconfig:"SPREADSHEET_ID"`
		SheetName     string `envconfig:"SHEET_NAME" default:"Sheet1"`
	} `envconfig:"SHEETS"`

	Email struct {
		Host     string `envconfig:"HOST" default:"smtp.gmail.com"`
		Port     int    `envconfig:"PORT" default:"587"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		FromName string `envconfig:"FROM_NAME" default:"PoppinFlea"`
	} `envconfig:"EMAIL"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"60"`
	} `envconfig:"CACHE"`

	External struct {
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
