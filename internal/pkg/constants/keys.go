package constants

// viper config keys; env form is SANZAD_<KEY>.
const (
	EnvPrefix = "sanzad"

	ViperKeyAddr        = "addr"
	ViperKeyDSN         = "dsn"
	ViperKeyUploadsDir  = "uploads_dir"
	ViperKeyCORSOrigins = "cors_origins"
)

type ctxKey string

// CtxKeyRequestID carries the request id into request-scoped contexts so the
// logger can attach it to every line.
const CtxKeyRequestID ctxKey = "request_id"
