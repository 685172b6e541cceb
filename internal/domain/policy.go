package domain

import "strings"

// RolePolicy is the single place role overrides live. Certain accounts are
// always reported as Admin no matter what role the store holds for them;
// every surface that exposes a role (login, refresh, profile) must go
// through Effective rather than reading User.Role directly.
type RolePolicy struct {
	adminEmails map[string]struct{}
}

// NewRolePolicy builds a policy from a list of always-admin emails
func NewRolePolicy(adminEmails []string) *RolePolicy {
	m := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		m[NormalizeEmail(e)] = struct{}{}
	}
	return &RolePolicy{adminEmails: m}
}

// Effective returns the role the given account should be treated as having
func (p *RolePolicy) Effective(email string, role Role) Role {
	if p == nil {
		return role
	}
	if _, ok := p.adminEmails[NormalizeEmail(email)]; ok {
		return RoleAdmin
	}
	return role
}

// NormalizeEmail lowercases and trims an email for comparison and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
