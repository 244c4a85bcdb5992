package orgAuth

import (
	"context"

	"github.com/MrEthical07/orgAuth/session"
)

// Payload is the identity carried inside access tokens, refresh tokens, and
// session-cache entries. It is the same type the session cache stores.
type Payload = session.Payload

// TokenPair is returned by [Engine.Signin] and [Engine.Refresh].
// AccessToken is short-lived; RefreshToken rotates on every use.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserRecord is the full account record returned by [UserStore].
// RefreshToken holds the currently valid refresh token, or "" when the
// user has no active session.
type UserRecord struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	RefreshToken string
}

// CreateUserInput is the input for [UserStore.Create].
type CreateUserInput struct {
	Email        string
	Name         string
	PasswordHash string
}

// UserUpdate is a partial update for [UserStore.Update]. Nil fields are
// left untouched; a non-nil empty RefreshToken clears the session pointer.
type UserUpdate struct {
	Name         *string
	RefreshToken *string
}

// AccessLevel is the two-level organization membership grade.
type AccessLevel string

const (
	// AccessAdmin is an exported constant or variable used by the authentication engine.
	AccessAdmin AccessLevel = "admin"
	// AccessMember is an exported constant or variable used by the authentication engine.
	AccessMember AccessLevel = "member"
)

// OrganizationMember is one entry in an organization's member list.
type OrganizationMember struct {
	Email       string
	Name        string
	AccessLevel AccessLevel
}

// Organization is the organization document. Members is the embedded
// member list; the creator is seeded as its sole admin on creation.
type Organization struct {
	ID          string
	Name        string
	Description string
	Members     []OrganizationMember
}

// OrganizationUpdate is a partial update for [OrganizationStore.Update].
// Only name and description are mutable; membership changes go through
// [OrganizationStore.AppendMember].
type OrganizationUpdate struct {
	Name        *string
	Description *string
}

// SignupInput is the input for [Engine.Signup].
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// Tx is an opaque transaction handle threaded through mutating store
// calls. Stores that do not support transactions accept nil.
type Tx interface{}

// TxRunner runs a function inside a transaction. The fn receives the
// handle to pass into store calls; returning an error rolls back.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// UserStore is the primary interface that callers must implement to
// integrate orgAuth with their user database. Email is unique; lookups
// that match nothing return [ErrUserNotFound], and Create on a taken
// email returns [ErrDuplicateUser].
type UserStore interface {
	Create(ctx context.Context, tx Tx, input CreateUserInput) (UserRecord, error)
	FindByEmail(ctx context.Context, email string) (UserRecord, error)
	FindByRefreshToken(ctx context.Context, token string) (UserRecord, error)
	Update(ctx context.Context, tx Tx, id string, update UserUpdate) (UserRecord, error)
}

// OrganizationStore is the organization counterpart of [UserStore].
// Create must persist the document with its seeded member list in a
// single insert. Lookups that match nothing return
// [ErrOrganizationNotFound].
type OrganizationStore interface {
	Create(ctx context.Context, tx Tx, org Organization) (Organization, error)
	FindAll(ctx context.Context) ([]Organization, error)
	FindByID(ctx context.Context, id string) (Organization, error)
	Update(ctx context.Context, tx Tx, id string, update OrganizationUpdate) (Organization, error)
	Delete(ctx context.Context, tx Tx, id string) error
	AppendMember(ctx context.Context, tx Tx, id string, member OrganizationMember) (Organization, error)
}
