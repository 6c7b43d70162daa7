package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	AdminToken    string
	AdminUsername string
	AdminPassword string

	TotalEggs          int
	DefaultDomain      string
	DefaultSubdomain   string
	DefaultProtocol    string
	BreakStreamEnabled bool
}

func Load() Config {
	loadDotEnv(".env")
	cfg := Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		TotalEggs:          getEnvInt("TOTAL_EGGS", 8),
		DefaultDomain:      getEnv("DEFAULT_LINK_DOMAIN", ""),
		DefaultSubdomain:   getEnv("DEFAULT_LINK_SUBDOMAIN", "demo"),
		DefaultProtocol:    getEnv("DEFAULT_LINK_PROTOCOL", "https"),
		BreakStreamEnabled: getEnvBool("BREAK_STREAM_ENABLED", false),
	}
	if cfg.TotalEggs < 1 {
		cfg.TotalEggs = 8
	}
	if cfg.TotalEggs > 64 {
		cfg.TotalEggs = 64
	}
	return cfg
}

func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func loadDotEnv(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		val = strings.Trim(val, "\"")
		if key == "" {
			continue
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvBool(key string, def bool) bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if val == "" {
		return def
	}
	switch val {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
