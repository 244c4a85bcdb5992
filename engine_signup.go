package orgAuth

import (
	"context"
	"errors"
	"strings"
)

// Signup describes the signup operation and its observable behavior.
//
// Signup may return an error when input validation, dependency calls, or security checks fail.
// Signup does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Signup(ctx context.Context, tx Tx, input SignupInput) (UserRecord, error) {
	if e.hasher == nil || e.users == nil {
		return UserRecord{}, ErrEngineNotReady
	}

	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return UserRecord{}, ErrSignupInvalid
	}

	hash, err := e.hasher.Hash(input.Password)
	if err != nil {
		return UserRecord{}, errors.Join(ErrHashing, err)
	}
	input.Password = ""

	created, err := e.users.Create(ctx, tx, CreateUserInput{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			e.metricInc(MetricSignupDuplicate)
			return UserRecord{}, ErrDuplicateUser
		}
		return UserRecord{}, err
	}

	e.metricInc(MetricSignupSuccess)
	return created, nil
}
