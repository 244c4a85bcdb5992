package orgAuth

import (
	"context"
	"strings"
)

// IsAdmin describes the isadmin operation and its observable behavior.
//
// IsAdmin may return an error when input validation, dependency calls, or security checks fail.
// IsAdmin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IsAdmin(ctx context.Context, email, orgID string) (bool, error) {
	if e.orgs == nil {
		return false, ErrEngineNotReady
	}

	org, err := e.orgs.FindByID(ctx, orgID)
	if err != nil {
		return false, err
	}

	for _, m := range org.Members {
		if m.Email == email && m.AccessLevel == AccessAdmin {
			return true, nil
		}
	}
	return false, nil
}

// CreateOrganization describes the createorganization operation and its observable behavior.
//
// The creator is seeded as the sole admin member in the same insert that
// persists the document; there is no window in which the organization
// exists without an admin.
func (e *Engine) CreateOrganization(ctx context.Context, tx Tx, creator Payload, name, description string) (Organization, error) {
	if e.orgs == nil {
		return Organization{}, ErrEngineNotReady
	}
	if strings.TrimSpace(name) == "" {
		return Organization{}, ErrOrganizationInvalid
	}

	org, err := e.orgs.Create(ctx, tx, Organization{
		Name:        name,
		Description: description,
		Members: []OrganizationMember{
			{
				Email:       creator.Email,
				Name:        creator.Name,
				AccessLevel: AccessAdmin,
			},
		},
	})
	if err != nil {
		return Organization{}, err
	}

	e.metricInc(MetricOrganizationCreated)
	return org, nil
}

// Organizations describes the organizations operation and its observable behavior.
//
// Organizations may return an error when input validation, dependency calls, or security checks fail.
// Organizations does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Organizations(ctx context.Context) ([]Organization, error) {
	if e.orgs == nil {
		return nil, ErrEngineNotReady
	}
	return e.orgs.FindAll(ctx)
}

// Organization describes the organization operation and its observable behavior.
//
// Organization may return an error when input validation, dependency calls, or security checks fail.
// Organization does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Organization(ctx context.Context, id string) (Organization, error) {
	if e.orgs == nil {
		return Organization{}, ErrEngineNotReady
	}
	return e.orgs.FindByID(ctx, id)
}

// UpdateOrganization describes the updateorganization operation and its observable behavior.
//
// UpdateOrganization may return an error when input validation, dependency calls, or security checks fail.
// UpdateOrganization does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateOrganization(ctx context.Context, tx Tx, actor Payload, id string, update OrganizationUpdate) (Organization, error) {
	if err := e.requireAdmin(ctx, actor, id); err != nil {
		return Organization{}, err
	}

	org, err := e.orgs.Update(ctx, tx, id, update)
	if err != nil {
		return Organization{}, err
	}

	e.metricInc(MetricOrganizationUpdated)
	return org, nil
}

// RemoveOrganization describes the removeorganization operation and its observable behavior.
//
// RemoveOrganization may return an error when input validation, dependency calls, or security checks fail.
// RemoveOrganization does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RemoveOrganization(ctx context.Context, tx Tx, actor Payload, id string) error {
	if err := e.requireAdmin(ctx, actor, id); err != nil {
		return err
	}

	if err := e.orgs.Delete(ctx, tx, id); err != nil {
		return err
	}

	e.metricInc(MetricOrganizationRemoved)
	return nil
}

// AddMember describes the addmember operation and its observable behavior.
//
// AddMember resolves the invitee by email in the user directory and appends
// them at member level; an unregistered email fails with [ErrUserNotFound].
// Entries are not deduplicated: inviting the same email twice appends two
// entries.
func (e *Engine) AddMember(ctx context.Context, tx Tx, actor Payload, id, email string) (Organization, error) {
	if e.users == nil {
		return Organization{}, ErrEngineNotReady
	}
	if err := e.requireAdmin(ctx, actor, id); err != nil {
		return Organization{}, err
	}

	invitee, err := e.users.FindByEmail(ctx, email)
	if err != nil {
		return Organization{}, err
	}

	org, err := e.orgs.AppendMember(ctx, tx, id, OrganizationMember{
		Email:       invitee.Email,
		Name:        invitee.Name,
		AccessLevel: AccessMember,
	})
	if err != nil {
		return Organization{}, err
	}

	e.metricInc(MetricMemberAdded)
	return org, nil
}

func (e *Engine) requireAdmin(ctx context.Context, actor Payload, orgID string) error {
	admin, err := e.IsAdmin(ctx, actor.Email, orgID)
	if err != nil {
		return err
	}
	if !admin {
		e.metricInc(MetricForbidden)
		return ErrForbidden
	}
	return nil
}
