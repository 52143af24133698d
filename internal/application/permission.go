package application

import (
	"slices"

	"github.com/linskybing/project-review/internal/config"
)

type RequestorType string

const (
	RequestorAdmin       RequestorType = "ADMIN"
	RequestorEditable    RequestorType = "USER_EDITABLE"
	RequestorNonEditable RequestorType = "USER_NON_EDITABLE"
)

// Caller is the identity resolved by a transport.
type Caller struct {
	UserID string
	Role   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == config.AdminRole
}

// PermissionPolicy controls how an empty membership set is treated. The
// legacy rule lets anyone edit a project with no (or unloaded) members.
type PermissionPolicy struct {
	LegacyEmptyMembershipGrants bool
}

func DefaultPolicy() PermissionPolicy {
	return PermissionPolicy{LegacyEmptyMembershipGrants: config.LegacyEmptyMembershipGrants}
}

// CheckPermission fails with ErrPermissionDenied unless caller is in members.
// Admins get no bypass here.
func (p PermissionPolicy) CheckPermission(members []string, caller Caller) error {
	if len(members) == 0 && p.LegacyEmptyMembershipGrants {
		return nil
	}
	if slices.Contains(members, caller.UserID) {
		return nil
	}
	return ErrPermissionDenied
}

func (p PermissionPolicy) Classify(members []string, caller Caller) RequestorType {
	if caller.IsAdmin() {
		return RequestorAdmin
	}
	if p.CheckPermission(members, caller) == nil {
		return RequestorEditable
	}
	return RequestorNonEditable
}
