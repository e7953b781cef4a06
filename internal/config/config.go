package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Persistence: sqlite at DBPath unless DATABASE_URL points at postgres.
	DBPath      string
	DatabaseURL string

	AcceptedPaymentMethods []string

	AdminToken string

	DiscordWebhookURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailTo       string

	BitcoinAddress  string
	EthereumAddress string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "production"),

		DBPath:      getEnv("DB_PATH", "./hope.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		AcceptedPaymentMethods: splitList(getEnv("ACCEPTED_PAYMENT_METHODS", "bitcoin,ethereum")),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "noreply@hopefoundation.org"),
		MailTo:       getEnv("MAIL_TO", "info@hopefoundation.org"),

		BitcoinAddress:  getEnv("BITCOIN_ADDRESS", ""),
		EthereumAddress: getEnv("ETHEREUM_ADDRESS", ""),
	}
}

// AcceptsPaymentMethod reports whether the deployment takes donations via
// the given method. Matching is case-insensitive.
func (c *Config) AcceptsPaymentMethod(method string) bool {
	for _, m := range c.AcceptedPaymentMethods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
