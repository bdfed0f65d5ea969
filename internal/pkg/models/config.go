package models

// Config holds all gateway configuration
type Config struct {
	App      AppConfig      `json:"app"`
	Server   ServerConfig   `json:"server"`
	Services ServicesConfig `json:"services"`
	NSQ      NSQConfig      `json:"nsq"`
	Client   ClientConfig   `json:"client"`
	Logger   LoggerConfig   `json:"logger"`
}

// AppConfig represents application metadata configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            int `json:"port"`
	ShutdownTimeout int `json:"shutdown_timeout"`
}

// ServicesConfig holds the base URLs of the backend services the gateway fronts
type ServicesConfig struct {
	UsersURL    string `json:"users_url"`
	VoyageURL   string `json:"voyage_url"`
	PaymentsURL string `json:"payments_url"`
	PricingURL  string `json:"pricing_url"`
	MetricsURL  string `json:"metrics_url"`
}

// NSQConfig represents the metrics queue configuration
type NSQConfig struct {
	Address      string `json:"address"`
	MetricsTopic string `json:"metrics_topic"`
}

// ClientConfig represents outbound HTTP client configuration
type ClientConfig struct {
	TimeoutSeconds int `json:"timeout_seconds"`
}

// LoggerConfig represents logging configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
