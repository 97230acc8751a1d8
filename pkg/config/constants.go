package config

const (
	EnvPrefix = "SOFTLINE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SOFTLINE_DB_DSN"
	EnvDBHost = "SOFTLINE_DB_HOST"
	EnvDBUser = "SOFTLINE_DB_USER"
	EnvDBName = "SOFTLINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
