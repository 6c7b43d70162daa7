package game

import "errors"

var (
	ErrEggNotFound      = errors.New("egg does not exist")
	ErrEggAlreadyBroken = errors.New("egg is already broken")
	ErrLinkNotFound     = errors.New("link does not exist")
	ErrLinkUsed         = errors.New("link has already been used")
	ErrNoRewards        = errors.New("no rewards to claim")
	ErrDomainRequired   = errors.New("domain must not be empty")
)

// ValidationError marks malformed or out-of-range admin input; the HTTP
// layer maps it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrf(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
