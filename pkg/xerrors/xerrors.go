package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
)

// Programs / workspaces
var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrNoDefaultProgram  = errors.New("workspace does not have a default program configured")
	ErrProgramNotFound   = errors.New("program not found")
)

// Rewards
var (
	ErrMaxAmountLessThanAmount    = errors.New("max reward amount cannot be less than the reward amount")
	ErrInvalidPartnerIDs          = errors.New("invalid partner IDs provided")
	ErrDuplicateProgramWideReward = errors.New("an existing program-wide reward already exists for this event")
	ErrDuplicatePartnerReward     = errors.New("some of these partners already have an existing partner-specific reward for this event")
)

const pgUniqueViolation = "23505"

// ParsePGErrorCode extracts the SQLSTATE from a pgx error, or "unknown".
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// IsUniqueViolation reports whether err is a postgres unique_violation.
// The reward tables carry unique indexes over (program_id, event) for
// program-wide rewards and (enrollment, event) for partner rewards, so a
// concurrent create that slips past the count checks still surfaces here.
func IsUniqueViolation(err error) bool {
	return ParsePGErrorCode(err) == pgUniqueViolation
}
