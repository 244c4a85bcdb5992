package orgAuth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/MrEthical07/orgAuth/jwt"
	"github.com/MrEthical07/orgAuth/password"
	"github.com/MrEthical07/orgAuth/session"
)

// Engine defines a public type used by orgAuth APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config     Config
	metrics    *Metrics
	hasher     *password.Hasher
	jwtManager *jwt.Manager
	cache      session.Cache
	users      UserStore
	orgs       OrganizationStore
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricObserve(id MetricID, d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(id, d)
}

// Signin describes the signin operation and its observable behavior.
//
// Signin may return an error when input validation, dependency calls, or security checks fail.
// Signin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Signin(ctx context.Context, email, pass string) (*TokenPair, error) {
	if e.hasher == nil || e.jwtManager == nil || e.users == nil {
		return nil, ErrEngineNotReady
	}
	start := time.Now()

	if email == "" || pass == "" {
		e.metricInc(MetricSigninFailure)
		return nil, ErrInvalidCredentials
	}

	user, err := e.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			e.metricInc(MetricSigninFailure)
			return nil, ErrInvalidCredentials
		}
		e.metricInc(MetricSigninFailure)
		return nil, err
	}

	ok, err := e.hasher.Verify(pass, user.PasswordHash)
	if err != nil || !ok {
		// Unknown user and wrong password are indistinguishable to the caller.
		e.metricInc(MetricSigninFailure)
		return nil, ErrInvalidCredentials
	}
	pass = ""

	pair, err := e.issuePair(ctx, nil, user)
	if err != nil {
		e.metricInc(MetricSigninFailure)
		return nil, err
	}

	e.metricInc(MetricSigninSuccess)
	e.metricObserve(MetricSigninLatency, time.Since(start))
	return pair, nil
}

// Refresh describes the refresh operation and its observable behavior.
//
// Refresh rotates the pair: the presented refresh token is single-use. A
// cache hit is consumed immediately; on a miss the durable directory match
// plus cryptographic verification both must hold.
func (e *Engine) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if e.jwtManager == nil || e.users == nil || e.cache == nil {
		return nil, ErrEngineNotReady
	}
	if refreshToken == "" {
		e.metricInc(MetricRefreshFailure)
		return nil, ErrInvalidCredentials
	}

	payload, err := e.cache.Get(ctx, refreshToken)
	switch {
	case err == nil:
		e.metricInc(MetricCacheHit)
		// Single-use: consume the entry before issuing the next pair.
		if err := e.cache.Delete(ctx, refreshToken); err != nil {
			log.Print("orgAuth: session cache delete failed on refresh")
		}

		pair, err := e.issuePair(ctx, nil, UserRecord{
			ID:    payload.ID,
			Email: payload.Email,
			Name:  payload.Name,
		})
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				e.metricInc(MetricRefreshFailure)
				return nil, ErrInvalidCredentials
			}
			e.metricInc(MetricRefreshFailure)
			return nil, err
		}
		e.metricInc(MetricRefreshSuccess)
		return pair, nil

	case errors.Is(err, session.ErrCacheMiss):
		e.metricInc(MetricCacheMiss)

		user, err := e.users.FindByRefreshToken(ctx, refreshToken)
		if err != nil {
			e.metricInc(MetricRefreshFailure)
			if errors.Is(err, ErrUserNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}

		// The directory match alone is not enough; the token must still verify.
		if _, err := e.jwtManager.Parse(refreshToken); err != nil {
			e.metricInc(MetricRefreshFailure)
			return nil, ErrInvalidCredentials
		}

		pair, err := e.issuePair(ctx, nil, user)
		if err != nil {
			e.metricInc(MetricRefreshFailure)
			return nil, err
		}
		e.metricInc(MetricRefreshSuccess)
		return pair, nil

	default:
		e.metricInc(MetricRefreshFailure)
		return nil, err
	}
}

// Revoke describes the revoke operation and its observable behavior.
//
// Revoke may return an error when input validation, dependency calls, or security checks fail.
// Revoke does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Revoke(ctx context.Context, refreshToken string) error {
	if e.users == nil || e.cache == nil {
		return ErrEngineNotReady
	}
	if refreshToken == "" {
		e.metricInc(MetricRevokeFailure)
		return ErrInvalidCredentials
	}

	if err := e.cache.Delete(ctx, refreshToken); err != nil {
		log.Print("orgAuth: session cache delete failed on revoke")
	}

	user, err := e.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		e.metricInc(MetricRevokeFailure)
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	cleared := ""
	if _, err := e.users.Update(ctx, nil, user.ID, UserUpdate{RefreshToken: &cleared}); err != nil {
		e.metricInc(MetricRevokeFailure)
		return err
	}

	e.metricInc(MetricRevokeSuccess)
	return nil
}

// VerifyAccess describes the verifyaccess operation and its observable behavior.
//
// VerifyAccess is the stateless hot path: signature and expiry only, no
// store or cache round-trip. Failures surface [jwt.ErrTokenInvalid] or
// [jwt.ErrTokenExpired].
func (e *Engine) VerifyAccess(token string) (*Payload, error) {
	if e.jwtManager == nil {
		return nil, ErrEngineNotReady
	}
	p, err := e.jwtManager.Parse(token)
	if err != nil {
		return nil, err
	}
	return &Payload{ID: p.ID, Email: p.Email, Name: p.Name}, nil
}

// UserByEmail describes the userbyemail operation and its observable behavior.
//
// UserByEmail may return an error when input validation, dependency calls, or security checks fail.
// UserByEmail does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UserByEmail(ctx context.Context, email string) (UserRecord, error) {
	if e.users == nil {
		return UserRecord{}, ErrEngineNotReady
	}
	return e.users.FindByEmail(ctx, email)
}

// issuePair signs a fresh access+refresh pair, persists the refresh pointer
// to the directory, then caches the refresh payload. The directory write is
// the rotation point; a prior token's cache entry is left to expire on TTL.
func (e *Engine) issuePair(ctx context.Context, tx Tx, user UserRecord) (*TokenPair, error) {
	payload := jwt.Payload{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	access, err := e.jwtManager.Issue(payload, e.config.JWT.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := e.jwtManager.Issue(payload, e.config.JWT.RefreshTTL)
	if err != nil {
		return nil, err
	}

	if _, err := e.users.Update(ctx, tx, user.ID, UserUpdate{RefreshToken: &refresh}); err != nil {
		return nil, err
	}

	entry := session.Payload{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	if err := e.cache.Set(ctx, refresh, entry, e.config.cacheTTL()); err != nil {
		// The cache is a lookaside; refresh still works through the directory.
		log.Print("orgAuth: session cache set failed")
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
