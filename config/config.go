package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    []byte
	StripeSecret string

	// Authorization policy for mutation routes that were historically left
	// open. Default is guarded; flip only after stakeholder review.
	AllowOpenUserMutations bool
	AllowOpenMenuUpdates   bool
}

// Load reads configuration from the environment, picking up a .env file if
// one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		Port:                   getEnv("PORT", "5000"),
		MongoURI:               getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:                getEnv("MONGODB_DB", "restaurantDb"),
		JWTSecret:              []byte(getEnv("ACCESS_TOKEN_SECRET", "restaurant_super_secret_2024")),
		StripeSecret:           os.Getenv("STRIPE_SECRET_KEY"),
		AllowOpenUserMutations: getEnv("ALLOW_OPEN_USER_MUTATIONS", "false") == "true",
		AllowOpenMenuUpdates:   getEnv("ALLOW_OPEN_MENU_UPDATES", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
