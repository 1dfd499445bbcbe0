package constants

const (
	OutcomeValid           = "VALID"
	OutcomeUnassigned      = "UNASSIGNED"
	OutcomeInvalidChecksum = "INVALID_CHECKSUM"
	OutcomeMalformed       = "MALFORMED"
)

const (
	DefaultGenerateLimit = 100
	DefaultJWTSecret     = "supersecretkey"
	TokenTTLHours        = 24
)
