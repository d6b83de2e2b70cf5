package roles

import (
	"bytes"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/dao-cli/internal/domain"
	"github.com/trebuchet-org/dao-cli/internal/domain/models"
)

// Registry is an AccessControl-style role registry. The admin of every role
// is DefaultAdminRole.
type Registry struct {
	mu    sync.RWMutex
	state *models.RoleState
}

// NewRegistry creates a registry over an existing role state
func NewRegistry(state *models.RoleState) *Registry {
	state.Normalize()
	return &Registry{state: state}
}

// HasRole reports whether account holds role
func (r *Registry) HasRole(role common.Hash, account common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Members[role][account]
}

// Setup grants role without an admin check. Only used while creating a new state.
func (r *Registry) Setup(role common.Hash, account common.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(role, account, true)
}

// Grant gives account the role. The caller must hold DefaultAdminRole.
func (r *Registry) Grant(caller common.Address, role common.Hash, account common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.Members[domain.DefaultAdminRole][caller] {
		return domain.MissingRoleErr{Account: caller, Role: domain.DefaultAdminRole}
	}
	r.set(role, account, true)
	return nil
}

// Revoke removes the role from account. The caller must hold DefaultAdminRole.
func (r *Registry) Revoke(caller common.Address, role common.Hash, account common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.Members[domain.DefaultAdminRole][caller] {
		return domain.MissingRoleErr{Account: caller, Role: domain.DefaultAdminRole}
	}
	r.set(role, account, false)
	return nil
}

// Members lists the holders of role in address order
func (r *Registry) Members(role common.Hash) []common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := lo.Keys(r.state.Members[role])
	sort.Slice(members, func(i, j int) bool {
		return bytes.Compare(members[i][:], members[j][:]) < 0
	})
	return members
}

// Roles lists every role with at least one member
func (r *Registry) Roles() []common.Hash {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := lo.Filter(lo.Keys(r.state.Members), func(role common.Hash, _ int) bool {
		return len(r.state.Members[role]) > 0
	})
	sort.Slice(roles, func(i, j int) bool {
		return bytes.Compare(roles[i][:], roles[j][:]) < 0
	})
	return roles
}

// Caller must hold r.mu.
func (r *Registry) set(role common.Hash, account common.Address, member bool) {
	if !member {
		delete(r.state.Members[role], account)
		if len(r.state.Members[role]) == 0 {
			delete(r.state.Members, role)
		}
		return
	}
	if r.state.Members[role] == nil {
		r.state.Members[role] = make(map[common.Address]bool)
	}
	r.state.Members[role][account] = true
}
