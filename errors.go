package orgAuth

import "errors"

var (
	// ErrInvalidCredentials is an exported constant or variable used by the authentication engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is an exported constant or variable used by the authentication engine.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is an exported constant or variable used by the authentication engine.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrSignupInvalid is an exported constant or variable used by the authentication engine.
	ErrSignupInvalid = errors.New("invalid signup request")
	// ErrHashing is an exported constant or variable used by the authentication engine.
	ErrHashing = errors.New("password hashing failed")
	// ErrOrganizationNotFound is an exported constant or variable used by the authentication engine.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrOrganizationInvalid is an exported constant or variable used by the authentication engine.
	ErrOrganizationInvalid = errors.New("invalid organization request")
	// ErrForbidden is an exported constant or variable used by the authentication engine.
	ErrForbidden = errors.New("admin access required")
	// ErrEngineNotReady is an exported constant or variable used by the authentication engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
