package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv returns the variable or fallback when unset or blank.
func GetEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// EnvBool accepts true/1/yes.
func EnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// envInt parses a positive integer, falling back when unset or invalid.
func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// JWTSecret is the HMAC key for issued tokens.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// JWTExpiry reads JWT_EXPIRE_HOURS, default 24 hours.
func JWTExpiry() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas. Empty means "*".
func AllowedOrigins() []string {
	raw := GetEnv("CORS_ALLOWED_ORIGINS", "*")
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// AssignmentPolicy is "permissive" (default) or "strict".
func AssignmentPolicy() string {
	return strings.ToLower(GetEnv("ASSIGNMENT_POLICY", "permissive"))
}
