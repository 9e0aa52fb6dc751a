package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrEmptyToken indicates login was called with an empty token.
	ErrEmptyToken = errors.New("token must not be empty")

	// ErrUnknownPowerUp indicates an unknown power-up name was given to shop buy.
	ErrUnknownPowerUp = errors.New("unknown power-up")

	// ErrUnknownScope indicates an invalid leaderboard scope.
	ErrUnknownScope = errors.New("unknown leaderboard scope")

	// ErrInvalidRating indicates a skill rating outside the accepted range.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)
