package models

import "errors"

// Error kinds returned by the services. Endpoints map them onto HTTP status
// codes with errors.Is; validation errors are wrapped with field context.
var (
	ErrValidation = errors.New("validation failed")
	ErrNoFields   = errors.New("no fields provided")

	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrEventNotFound  = errors.New("event not found")

	ErrPlayerTeamMismatch = errors.New("player does not belong to the given team")
	ErrTeamNotInMatch     = errors.New("team does not play in this match")

	// ErrScoreInconsistency means the score ledger was asked to credit a team
	// outside the match. The validator makes this unreachable for caller
	// input, so seeing it signals a programming defect, not a bad request.
	ErrScoreInconsistency = errors.New("score ledger asked to credit a team outside the match")

	// ErrStorage tags unexpected database failures. The request itself was
	// well-formed, so callers may retry.
	ErrStorage = errors.New("storage operation failed")
)
