package identity

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that
	// already belongs to an account.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRoleMismatch is returned on login when the credentials are valid
	// but the account holds a different role than the caller claimed.
	// This is a client error, never a server fault.
	ErrRoleMismatch = errors.New("account role does not match")

	// ErrInvalidRole is returned for a role outside the closed set.
	ErrInvalidRole = errors.New("unknown role")

	// ErrIncompleteProfile is returned when a registration is missing a
	// field its role requires.
	ErrIncompleteProfile = errors.New("incomplete profile")
)
