package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the access profile of an administrator
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
)

// Roles lists every valid role
var Roles = []Role{RoleAdmin, RoleEditor}

// ParseRole converts a role name into a Role, ignoring case
func ParseRole(name string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(name, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", name)
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	default:
		return false
	}
}

// In reports whether r belongs to the given role set.
// Unknown roles never belong to any set.
func (r Role) In(set ...Role) bool {
	switch r {
	case RoleAdmin, RoleEditor:
		for _, allowed := range set {
			if allowed == r {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// UnmarshalJSON rejects role names outside the enumeration
func (r *Role) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
