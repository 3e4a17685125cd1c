package config

const EnvPrefix = "CARTIFY"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "CARTIFY_APP_ENV"
	EnvPort     = "CARTIFY_APP_PORT"
	EnvLogLevel = "CARTIFY_LOG_LEVEL"

	EnvDBDSN  = "CARTIFY_DB_DSN"
	EnvDBHost = "CARTIFY_DB_HOST"
	EnvDBUser = "CARTIFY_DB_USER"
	EnvDBName = "CARTIFY_DB_NAME"

	EnvRedisURL = "CARTIFY_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
