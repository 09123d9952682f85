package payment

import (
	"errors"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// Config holds the gateway signing credentials.
type Config struct {
	KeySecret string
	Sandbox   bool
}

// LoadConfig reads the gateway settings from the environment.
func LoadConfig() Config {
	cfg := Config{
		KeySecret: os.Getenv("ASTROVEDA_RAZORPAY_KEY_SECRET"),
	}
	if v := os.Getenv("ASTROVEDA_PAYMENT_SANDBOX"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sandbox = b
		}
	}
	return cfg
}

// Secret returns the signing secret. In sandbox mode without a configured
// secret a per-process one is generated, so sandbox confirmations verify
// only within the run that issued them.
func (c Config) Secret() (string, error) {
	if c.KeySecret != "" {
		return c.KeySecret, nil
	}
	if c.Sandbox {
		return uuid.NewString(), nil
	}
	return "", errors.New("payment not configured: set ASTROVEDA_RAZORPAY_KEY_SECRET or ASTROVEDA_PAYMENT_SANDBOX=true")
}
