package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/config"
)

// RoleScope selects which contract's roles are managed
type RoleScope string

const (
	RoleScopeTreasury RoleScope = "treasury"
	RoleScopeToken    RoleScope = "token"
)

// RoleParams identifies a role assignment
type RoleParams struct {
	Scope   RoleScope
	Role    string
	Account common.Address
}

// RoleResult describes a role assignment after an operation
type RoleResult struct {
	Scope   RoleScope      `json:"scope"`
	Role    string         `json:"role"`
	RoleID  common.Hash    `json:"roleId"`
	Account common.Address `json:"account"`
	Member  bool           `json:"member"`
}

// RoleListing lists role members of a scope
type RoleListing struct {
	Scope RoleScope                   `json:"scope"`
	Roles map[string][]common.Address `json:"roles"`
}

// ManageRoles grants, revokes and inspects roles
type ManageRoles struct {
	config  *config.RuntimeConfig
	session *ChainSession
}

// NewManageRoles creates a new ManageRoles use case
func NewManageRoles(cfg *config.RuntimeConfig, session *ChainSession) *ManageRoles {
	return &ManageRoles{config: cfg, session: session}
}

// Grant gives the role to the account. The sender must be an admin.
func (uc *ManageRoles) Grant(ctx context.Context, params RoleParams) (*RoleResult, error) {
	return uc.update(ctx, params, func(registry RoleRegistry, from common.Address, role common.Hash) error {
		return registry.Grant(from, role, params.Account)
	})
}

// Revoke removes the role from the account. The sender must be an admin.
func (uc *ManageRoles) Revoke(ctx context.Context, params RoleParams) (*RoleResult, error) {
	return uc.update(ctx, params, func(registry RoleRegistry, from common.Address, role common.Hash) error {
		return registry.Revoke(from, role, params.Account)
	})
}

// Check reports whether the account holds the role
func (uc *ManageRoles) Check(ctx context.Context, params RoleParams) (*RoleResult, error) {
	role, err := parseRole(params.Role)
	if err != nil {
		return nil, err
	}
	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}
	registry, err := registryFor(chain, params.Scope)
	if err != nil {
		return nil, err
	}
	return newRoleResult(params, role, registry), nil
}

// List shows every role with its members
func (uc *ManageRoles) List(ctx context.Context, scope RoleScope) (*RoleListing, error) {
	chain, err := uc.session.View(ctx)
	if err != nil {
		return nil, err
	}
	registry, err := registryFor(chain, scope)
	if err != nil {
		return nil, err
	}

	listing := &RoleListing{Scope: scope, Roles: make(map[string][]common.Address)}
	for _, role := range registry.Roles() {
		listing.Roles[domain.RoleName(role)] = registry.Members(role)
	}
	return listing, nil
}

func (uc *ManageRoles) update(ctx context.Context, params RoleParams, fn func(registry RoleRegistry, from common.Address, role common.Hash) error) (*RoleResult, error) {
	from, err := requireSender(uc.config)
	if err != nil {
		return nil, err
	}
	role, err := parseRole(params.Role)
	if err != nil {
		return nil, err
	}

	var result *RoleResult
	err = uc.session.Update(ctx, func(chain *Chain) error {
		registry, err := registryFor(chain, params.Scope)
		if err != nil {
			return err
		}
		if err := fn(registry, from, role); err != nil {
			return err
		}
		result = newRoleResult(params, role, registry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func newRoleResult(params RoleParams, role common.Hash, registry RoleRegistry) *RoleResult {
	return &RoleResult{
		Scope:   params.Scope,
		Role:    domain.RoleName(role),
		RoleID:  role,
		Account: params.Account,
		Member:  registry.HasRole(role, params.Account),
	}
}

func parseRole(s string) (common.Hash, error) {
	role, ok := domain.ParseRole(s)
	if !ok {
		return common.Hash{}, fmt.Errorf("unknown role %q (use a role name like CHAIRMAN_ROLE or a 32-byte hex id)", s)
	}
	return role, nil
}

func registryFor(chain *Chain, scope RoleScope) (RoleRegistry, error) {
	switch scope {
	case RoleScopeTreasury, "":
		return chain.Roles, nil
	case RoleScopeToken:
		return chain.TokenRoles, nil
	default:
		return nil, fmt.Errorf("unknown role scope %q (expected treasury or token)", scope)
	}
}
