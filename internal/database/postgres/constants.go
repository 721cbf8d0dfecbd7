package postgres

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation       = "23505"
	pgErrCodeCheckViolation        = "23514"
	pgErrCodeSerializationFailure  = "40001"
	pgErrCodeDeadlockDetected      = "40P01"
)
