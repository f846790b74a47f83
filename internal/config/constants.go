package config

import "time"

// Application identity.
const (
	AppName     = "momentum"
	ServiceName = "momentum"
	DBFileName  = "momentum.db"
)

// Environments accepted in NODE_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults applied when a key is unset.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 5000
	DefaultLogLevel          = "info"
	DefaultSessionTTL        = 7 * 24 * time.Hour
	DefaultAIModel           = "gpt-4o-mini"
	DefaultChatRatePerMinute = 20
	DefaultDBTimeout         = 5 * time.Second
	ShutdownTimeout          = 10 * time.Second
)

const maxConfigFileSize = 1024 * 1024 // 1MB
