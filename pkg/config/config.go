package config

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	TokenIssuer              string
	AccessTokenExpireMinutes int
	RefreshTokenExpireDays   int
	PrivateKey               *rsa.PrivateKey
	PublicKey                *rsa.PublicKey
}

// Load reads the optional .env file, then the environment. The RSA key pair
// must stay stable across restarts or previously issued tokens become
// unverifiable.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnv("DB_PORT", "5432"),
		DBUser:                   getEnv("DB_USER", "postgres"),
		DBPassword:               getEnv("DB_PASSWORD", "postgres"),
		DBName:                   getEnv("DB_NAME", "footballteamapi"),
		DBSSLMode:                getEnv("DB_SSLMODE", "disable"),
		TokenIssuer:              getEnv("TOKEN_ISSUER", "footballteamapi"),
		AccessTokenExpireMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenExpireDays:   getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 1),
	}

	privatePEM, err := readKeyMaterial("TOKEN_PRIVATE_KEY", "TOKEN_PRIVATE_KEY_FILE")
	if err != nil {
		return nil, err
	}
	cfg.PrivateKey, err = jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parse rsa private key: %w", err)
	}

	publicPEM, err := readKeyMaterial("TOKEN_PUBLIC_KEY", "TOKEN_PUBLIC_KEY_FILE")
	if err != nil {
		return nil, err
	}
	cfg.PublicKey, err = jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parse rsa public key: %w", err)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// readKeyMaterial returns the PEM bytes from the inline env var, or from the
// file the companion *_FILE var points at.
func readKeyMaterial(inlineEnv, fileEnv string) ([]byte, error) {
	if inline := os.Getenv(inlineEnv); inline != "" {
		return []byte(inline), nil
	}
	if path := os.Getenv(fileEnv); path != "" {
		pem, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fileEnv, err)
		}
		return pem, nil
	}
	return nil, fmt.Errorf("neither %s nor %s is set", inlineEnv, fileEnv)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
