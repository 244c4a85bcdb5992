package memstore

import (
	"context"
	"errors"
	"testing"

	orgAuth "github.com/MrEthical07/orgAuth"
)

func TestUsersCreateEnforcesUniqueEmail(t *testing.T) {
	users := New().Users()
	ctx := context.Background()

	first, err := users.Create(ctx, nil, orgAuth.CreateUserInput{Email: "a@x.com", Name: "Alice", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}

	if _, err := users.Create(ctx, nil, orgAuth.CreateUserInput{Email: "a@x.com", Name: "Other", PasswordHash: "h2"}); !errors.Is(err, orgAuth.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestUsersFindByEmail(t *testing.T) {
	users := New().Users()
	ctx := context.Background()

	created, err := users.Create(ctx, nil, orgAuth.CreateUserInput{Email: "a@x.com", Name: "Alice", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := users.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected id %q, got %q", created.ID, found.ID)
	}

	if _, err := users.FindByEmail(ctx, "nobody@x.com"); !errors.Is(err, orgAuth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUsersFindByRefreshToken(t *testing.T) {
	users := New().Users()
	ctx := context.Background()

	created, err := users.Create(ctx, nil, orgAuth.CreateUserInput{Email: "a@x.com", Name: "Alice", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A fresh user has no session pointer; the empty token must never match.
	if _, err := users.FindByRefreshToken(ctx, ""); !errors.Is(err, orgAuth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for empty token, got %v", err)
	}

	token := "refresh-1"
	if _, err := users.Update(ctx, nil, created.ID, orgAuth.UserUpdate{RefreshToken: &token}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, err := users.FindByRefreshToken(ctx, "refresh-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected id %q, got %q", created.ID, found.ID)
	}

	cleared := ""
	if _, err := users.Update(ctx, nil, created.ID, orgAuth.UserUpdate{RefreshToken: &cleared}); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := users.FindByRefreshToken(ctx, "refresh-1"); !errors.Is(err, orgAuth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after clear, got %v", err)
	}
}

func TestUsersPartialUpdate(t *testing.T) {
	users := New().Users()
	ctx := context.Background()

	created, err := users.Create(ctx, nil, orgAuth.CreateUserInput{Email: "a@x.com", Name: "Alice", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "Alicia"
	updated, err := users.Update(ctx, nil, created.ID, orgAuth.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Alicia" {
		t.Fatalf("expected renamed user, got %q", updated.Name)
	}
	if updated.Email != "a@x.com" || updated.PasswordHash != "h" {
		t.Fatalf("expected untouched fields to survive, got %+v", updated)
	}

	if _, err := users.Update(ctx, nil, "missing", orgAuth.UserUpdate{Name: &name}); !errors.Is(err, orgAuth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOrgsCreateAndLookup(t *testing.T) {
	orgs := New().Organizations()
	ctx := context.Background()

	created, err := orgs.Create(ctx, nil, orgAuth.Organization{
		Name: "Acme",
		Members: []orgAuth.OrganizationMember{
			{Email: "a@x.com", Name: "Alice", AccessLevel: orgAuth.AccessAdmin},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if len(created.Members) != 1 {
		t.Fatalf("expected seeded member, got %d", len(created.Members))
	}

	found, err := orgs.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.Name != "Acme" {
		t.Fatalf("expected Acme, got %q", found.Name)
	}

	if _, err := orgs.FindByID(ctx, "missing"); !errors.Is(err, orgAuth.ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestOrgsFindAllPreservesInsertionOrder(t *testing.T) {
	orgs := New().Organizations()
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := orgs.Create(ctx, nil, orgAuth.Organization{Name: name}); err != nil {
			t.Fatalf("create %q failed: %v", name, err)
		}
	}

	all, err := orgs.FindAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if all[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, all[i].Name)
		}
	}
}

func TestOrgsAppendMember(t *testing.T) {
	orgs := New().Organizations()
	ctx := context.Background()

	created, err := orgs.Create(ctx, nil, orgAuth.Organization{Name: "Acme"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	after, err := orgs.AppendMember(ctx, nil, created.ID, orgAuth.OrganizationMember{
		Email:       "b@x.com",
		Name:        "Bob",
		AccessLevel: orgAuth.AccessMember,
	})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(after.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(after.Members))
	}

	if _, err := orgs.AppendMember(ctx, nil, "missing", orgAuth.OrganizationMember{}); !errors.Is(err, orgAuth.ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestOrgsDeleteRemovesFromListing(t *testing.T) {
	orgs := New().Organizations()
	ctx := context.Background()

	a, _ := orgs.Create(ctx, nil, orgAuth.Organization{Name: "A"})
	b, _ := orgs.Create(ctx, nil, orgAuth.Organization{Name: "B"})

	if err := orgs.Delete(ctx, nil, a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	all, err := orgs.FindAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("expected only %q to remain, got %+v", b.ID, all)
	}

	if err := orgs.Delete(ctx, nil, a.ID); !errors.Is(err, orgAuth.ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound on repeat delete, got %v", err)
	}
}

func TestReturnedOrgsAreCopies(t *testing.T) {
	orgs := New().Organizations()
	ctx := context.Background()

	created, err := orgs.Create(ctx, nil, orgAuth.Organization{
		Name: "Acme",
		Members: []orgAuth.OrganizationMember{
			{Email: "a@x.com", AccessLevel: orgAuth.AccessAdmin},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Members[0].Email = "mutated@x.com"

	found, err := orgs.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.Members[0].Email != "a@x.com" {
		t.Fatal("expected stored state to be isolated from returned slices")
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.Users().Create(ctx, nil, orgAuth.CreateUserInput{Email: "kept@x.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	boom := errors.New("boom")
	err := store.WithTx(ctx, func(ctx context.Context, tx orgAuth.Tx) error {
		if _, err := store.Users().Create(ctx, tx, orgAuth.CreateUserInput{Email: "doomed@x.com", PasswordHash: "h"}); err != nil {
			return err
		}
		if _, err := store.Organizations().Create(ctx, tx, orgAuth.Organization{Name: "Doomed"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to surface, got %v", err)
	}

	if _, err := store.Users().FindByEmail(ctx, "doomed@x.com"); !errors.Is(err, orgAuth.ErrUserNotFound) {
		t.Fatalf("expected user rollback, got %v", err)
	}
	if _, err := store.Users().FindByEmail(ctx, "kept@x.com"); err != nil {
		t.Fatalf("expected pre-tx state to survive, got %v", err)
	}
	orgs, err := store.Organizations().FindAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orgs) != 0 {
		t.Fatalf("expected org rollback, got %d", len(orgs))
	}
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	store := New()
	ctx := context.Background()

	err := store.WithTx(ctx, func(ctx context.Context, tx orgAuth.Tx) error {
		_, err := store.Users().Create(ctx, tx, orgAuth.CreateUserInput{Email: "a@x.com", PasswordHash: "h"})
		return err
	})
	if err != nil {
		t.Fatalf("tx failed: %v", err)
	}

	if _, err := store.Users().FindByEmail(ctx, "a@x.com"); err != nil {
		t.Fatalf("expected committed user, got %v", err)
	}
}
