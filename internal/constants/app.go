package constants

// Application Information
const (
	AppName    = "Applicant Service"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// Account Roles
const (
	RoleUser   = "USER"
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
)

// Rate Limit Key Prefix (redis)
const (
	RateLimitKeyPrefix = "applicant:ratelimit:"
)

// Log Levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)
