package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and optionally a file).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Firebase FirebaseConfig
	Notify   NotifyConfig
	Jobs     JobsConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host           string
	Port           int
	TimeoutSeconds int // per-invocation timeout applied to every request context
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FirebaseConfig settings for the Firebase project backing the service.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string // path to a service-account JSON; empty = ambient credentials
}

// NotifyConfig settings for the notification fan-out and account provisioning.
type NotifyConfig struct {
	SuperAdminEmail string // fixed administrator email with cross-shop authority
	StaffTopic      string // broadcast topic for repair events
}

// JobsConfig settings for the scheduled maintenance endpoints.
type JobsConfig struct {
	Secret string // shared bearer secret the scheduler must present
}

// Load reads the configuration from environment variables (and optionally a file).
// Env vars take priority. Expected names: APP_ENV, HTTP_PORT, FIREBASE_PROJECT_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional: configuration file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error if missing

	// Also try config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore error if missing

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "repairshop-backend"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			TimeoutSeconds: getInt(v, "REQUEST_TIMEOUT_SECONDS", 30),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getString(v, "FIREBASE_PROJECT_ID", ""),
			CredentialsFile: getString(v, "FIREBASE_CREDENTIALS_FILE", ""),
		},
		Notify: NotifyConfig{
			SuperAdminEmail: getString(v, "SUPER_ADMIN_EMAIL", "admin@huluca.com"),
			StaffTopic:      getString(v, "STAFF_TOPIC", "staff"),
		},
		Jobs: JobsConfig{
			Secret: getString(v, "JOBS_SECRET", ""),
		},
	}

	if cfg.Firebase.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
