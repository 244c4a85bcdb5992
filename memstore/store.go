package memstore

import (
	"context"
	"sync"

	orgAuth "github.com/MrEthical07/orgAuth"
	"github.com/google/uuid"
)

// Store holds users and organizations in process memory behind one mutex.
// [Store.Users] and [Store.Organizations] expose the two store interfaces
// over the shared state; Store itself implements [orgAuth.TxRunner].
// [Store.WithTx] rollback assumes no concurrent writers outside the
// transaction: restoring its snapshot discards writes interleaved with fn.
type Store struct {
	mu sync.RWMutex

	users   map[string]orgAuth.UserRecord
	byEmail map[string]string

	orgs     map[string]orgAuth.Organization
	orgOrder []string
}

// Users is the [orgAuth.UserStore] view of a [Store].
type Users struct {
	s *Store
}

// Orgs is the [orgAuth.OrganizationStore] view of a [Store].
type Orgs struct {
	s *Store
}

var (
	_ orgAuth.UserStore         = (*Users)(nil)
	_ orgAuth.OrganizationStore = (*Orgs)(nil)
	_ orgAuth.TxRunner          = (*Store)(nil)
)

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Store {
	return &Store{
		users:   make(map[string]orgAuth.UserRecord),
		byEmail: make(map[string]string),
		orgs:    make(map[string]orgAuth.Organization),
	}
}

// Users returns the user-directory view of this store.
func (s *Store) Users() *Users {
	return &Users{s: s}
}

// Organizations returns the organization-store view of this store.
func (s *Store) Organizations() *Orgs {
	return &Orgs{s: s}
}

/*
====================================
USERS
====================================
*/

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or security checks fail.
// Create does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (u *Users) Create(_ context.Context, _ orgAuth.Tx, input orgAuth.CreateUserInput) (orgAuth.UserRecord, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, taken := u.s.byEmail[input.Email]; taken {
		return orgAuth.UserRecord{}, orgAuth.ErrDuplicateUser
	}

	user := orgAuth.UserRecord{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
	}
	u.s.users[user.ID] = user
	u.s.byEmail[user.Email] = user.ID
	return user, nil
}

// FindByEmail describes the findbyemail operation and its observable behavior.
//
// FindByEmail may return an error when input validation, dependency calls, or security checks fail.
// FindByEmail does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (u *Users) FindByEmail(_ context.Context, email string) (orgAuth.UserRecord, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	id, ok := u.s.byEmail[email]
	if !ok {
		return orgAuth.UserRecord{}, orgAuth.ErrUserNotFound
	}
	return u.s.users[id], nil
}

// FindByRefreshToken describes the findbyrefreshtoken operation and its observable behavior.
//
// An empty token never matches: "" models a revoked session pointer, not a
// queryable value.
func (u *Users) FindByRefreshToken(_ context.Context, token string) (orgAuth.UserRecord, error) {
	if token == "" {
		return orgAuth.UserRecord{}, orgAuth.ErrUserNotFound
	}

	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, rec := range u.s.users {
		if rec.RefreshToken == token {
			return rec, nil
		}
	}
	return orgAuth.UserRecord{}, orgAuth.ErrUserNotFound
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
// Update does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (u *Users) Update(_ context.Context, _ orgAuth.Tx, id string, update orgAuth.UserUpdate) (orgAuth.UserRecord, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user, ok := u.s.users[id]
	if !ok {
		return orgAuth.UserRecord{}, orgAuth.ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.RefreshToken != nil {
		user.RefreshToken = *update.RefreshToken
	}

	u.s.users[id] = user
	return user, nil
}

/*
====================================
ORGANIZATIONS
====================================
*/

// Create persists the document and its seeded member list in one step.
func (o *Orgs) Create(_ context.Context, _ orgAuth.Tx, org orgAuth.Organization) (orgAuth.Organization, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	org.ID = uuid.NewString()
	org.Members = append([]orgAuth.OrganizationMember(nil), org.Members...)
	o.s.orgs[org.ID] = org
	o.s.orgOrder = append(o.s.orgOrder, org.ID)
	return cloneOrg(org), nil
}

// FindAll describes the findall operation and its observable behavior.
//
// FindAll does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (o *Orgs) FindAll(_ context.Context) ([]orgAuth.Organization, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()

	out := make([]orgAuth.Organization, 0, len(o.s.orgOrder))
	for _, id := range o.s.orgOrder {
		out = append(out, cloneOrg(o.s.orgs[id]))
	}
	return out, nil
}

// FindByID describes the findbyid operation and its observable behavior.
//
// FindByID may return an error when input validation, dependency calls, or security checks fail.
// FindByID does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (o *Orgs) FindByID(_ context.Context, id string) (orgAuth.Organization, error) {
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()

	org, ok := o.s.orgs[id]
	if !ok {
		return orgAuth.Organization{}, orgAuth.ErrOrganizationNotFound
	}
	return cloneOrg(org), nil
}

// Update describes the update operation and its observable behavior.
//
// Update may return an error when input validation, dependency calls, or security checks fail.
// Update does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (o *Orgs) Update(_ context.Context, _ orgAuth.Tx, id string, update orgAuth.OrganizationUpdate) (orgAuth.Organization, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	org, ok := o.s.orgs[id]
	if !ok {
		return orgAuth.Organization{}, orgAuth.ErrOrganizationNotFound
	}

	if update.Name != nil {
		org.Name = *update.Name
	}
	if update.Description != nil {
		org.Description = *update.Description
	}

	o.s.orgs[id] = org
	return cloneOrg(org), nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (o *Orgs) Delete(_ context.Context, _ orgAuth.Tx, id string) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	if _, ok := o.s.orgs[id]; !ok {
		return orgAuth.ErrOrganizationNotFound
	}
	delete(o.s.orgs, id)
	for i, oid := range o.s.orgOrder {
		if oid == id {
			o.s.orgOrder = append(o.s.orgOrder[:i], o.s.orgOrder[i+1:]...)
			break
		}
	}
	return nil
}

// AppendMember describes the appendmember operation and its observable behavior.
//
// AppendMember may return an error when input validation, dependency calls, or security checks fail.
// AppendMember does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (o *Orgs) AppendMember(_ context.Context, _ orgAuth.Tx, id string, member orgAuth.OrganizationMember) (orgAuth.Organization, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	org, ok := o.s.orgs[id]
	if !ok {
		return orgAuth.Organization{}, orgAuth.ErrOrganizationNotFound
	}
	org.Members = append(org.Members, member)
	o.s.orgs[id] = org
	return cloneOrg(org), nil
}

func cloneOrg(org orgAuth.Organization) orgAuth.Organization {
	out := org
	out.Members = append([]orgAuth.OrganizationMember(nil), org.Members...)
	return out
}

/*
====================================
TRANSACTIONS
====================================
*/

type memTx struct{}

// WithTx runs fn against this store with snapshot-rollback semantics: the
// full state is copied up front and restored if fn returns an error. The
// store mutex is NOT held across fn; tx calls go through the regular store
// methods.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx orgAuth.Tx) error) error {
	snapUsers, snapByEmail, snapOrgs, snapOrder := s.snapshot()

	if err := fn(ctx, memTx{}); err != nil {
		s.restore(snapUsers, snapByEmail, snapOrgs, snapOrder)
		return err
	}
	return nil
}

func (s *Store) snapshot() (map[string]orgAuth.UserRecord, map[string]string, map[string]orgAuth.Organization, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[string]orgAuth.UserRecord, len(s.users))
	for k, v := range s.users {
		users[k] = v
	}
	byEmail := make(map[string]string, len(s.byEmail))
	for k, v := range s.byEmail {
		byEmail[k] = v
	}
	orgs := make(map[string]orgAuth.Organization, len(s.orgs))
	for k, v := range s.orgs {
		orgs[k] = cloneOrg(v)
	}
	order := append([]string(nil), s.orgOrder...)
	return users, byEmail, orgs, order
}

func (s *Store) restore(users map[string]orgAuth.UserRecord, byEmail map[string]string, orgs map[string]orgAuth.Organization, order []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.byEmail = byEmail
	s.orgs = orgs
	s.orgOrder = order
}
