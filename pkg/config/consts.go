package config

// EnvPrefix is passed to envconfig; explicit tags below keep the full names visible.
const EnvPrefix = "rentora"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "RENTORA_APP_ENV"
	EnvPort       = "RENTORA_APP_PORT"
	EnvDBDSN      = "RENTORA_DB_DSN"
	EnvDBHost     = "RENTORA_DB_HOST"
	EnvDBUser     = "RENTORA_DB_USER"
	EnvDBName     = "RENTORA_DB_NAME"
	EnvRedisURL   = "RENTORA_REDIS_URL"
	EnvJWTSecret  = "RENTORA_JWT_SECRET"
	EnvJWTIssuer  = "RENTORA_JWT_ISSUER"
	EnvJWTExpMins = "RENTORA_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
