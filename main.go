package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Malrhis/Bills-handling-2/internal/categorize"
	v1 "github.com/Malrhis/Bills-handling-2/internal/controllers/v1"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"github.com/Malrhis/Bills-handling-2/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, variables from the environment win
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// The API URL is used for the links in responses and the
	// generated API documentation
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("API_URL is not a valid URL")
	}

	// Create data directory
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dataDir := filepath.Join(".", "data")
		err := os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dsn = filepath.Join(dataDir, "gorm.db")
	}

	// Connect to the database, migrate and seed the default categories
	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// An external classifier is optional. When a Gemini API key is
	// configured, descriptions the keywords cannot classify are sent
	// to the model.
	if apiKey, ok := os.LookupEnv("GEMINI_API_KEY"); ok && apiKey != "" {
		categories, err := models.Categories(models.DB)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		labels := make([]string, 0, len(categories))
		for _, category := range categories {
			labels = append(labels, category.Name)
		}

		gemini, err := categorize.NewGeminiClassifier(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"), labels)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer gemini.Close()

		v1.SetFallbackClassifier(gemini)
		log.Info().Str("model", gemini.Model()).Msg("Gemini fallback classifier enabled")
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
