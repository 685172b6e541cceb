package domain

import (
	"strings"
	"time"
)

// LeaveStatus represents the approval state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// NormalizeLeaveStatus title-cases a status path segment ("approved" ->
// "Approved") so URL filters match stored values.
func NormalizeLeaveStatus(s string) LeaveStatus {
	if s == "" {
		return ""
	}
	return LeaveStatus(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
}

// Leave represents a leave request. Dates are plain YYYY-MM-DD strings; the
// API never does date arithmetic on them.
type Leave struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
