package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role identifiers follow the OpenZeppelin AccessControl convention: keccak256 of the role name,
// with the default admin role being the zero hash.
var (
	DefaultAdminRole = common.Hash{}
	ChairmanRole     = crypto.Keccak256Hash([]byte("CHAIRMAN_ROLE"))
	MinterRole       = crypto.Keccak256Hash([]byte("MINTER_ROLE"))
	BurnerRole       = crypto.Keccak256Hash([]byte("BURNER_ROLE"))
)

// roleNames maps well-known role ids to their names for display
var roleNames = map[common.Hash]string{
	DefaultAdminRole: "DEFAULT_ADMIN_ROLE",
	ChairmanRole:     "CHAIRMAN_ROLE",
	MinterRole:       "MINTER_ROLE",
	BurnerRole:       "BURNER_ROLE",
}

// RoleName returns the human-readable name of a role, or its hex id when unknown
func RoleName(role common.Hash) string {
	if name, ok := roleNames[role]; ok {
		return name
	}
	return role.Hex()
}

// ParseRole accepts a well-known role name or a 32-byte hex id
func ParseRole(s string) (common.Hash, bool) {
	for id, name := range roleNames {
		if name == s {
			return id, true
		}
	}
	if len(s) == 66 && s[:2] == "0x" {
		return common.HexToHash(s), true
	}
	return common.Hash{}, false
}
