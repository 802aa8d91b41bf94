package constants

// viper configuration keys
const (
	ViperHTTPAddr    = "http.addr"
	ViperCORSOrigins = "http.cors_origins"
	ViperDatabaseDSN = "db.dsn"
	ViperJWTSecret   = "jwt.secret"
	ViperLogLevel    = "log.level"
	ViperSkipMigrate = "db.skip_migrate"
)

// echo context keys set by the auth middleware
const (
	CtxKeyClaims = "auth.claims"
)
