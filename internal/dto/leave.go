package dto

import (
	"time"

	"github.com/Moon-89/HRMIS/internal/domain"
)

// CreateLeaveRequest represents a new leave request. UserID is optional; the
// authenticated caller is the default owner.
type CreateLeaveRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	UserID    int64  `json:"userId"`
}

// UpdateLeaveRequest carries a partial leave update. UserID identifies the
// caller for the ownership check; nil fields are untouched.
type UpdateLeaveRequest struct {
	UserID    int64   `json:"userId"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Reason    *string `json:"reason"`
	Status    *string `json:"status"`
}

// LeaveUser is the owner summary embedded in leave listings
type LeaveUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LeaveResponse represents a leave request in responses
type LeaveResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Reason    string     `json:"reason"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	User      *LeaveUser `json:"user,omitempty"`
}

// ToLeaveResponse maps a domain leave, optionally embedding its owner
func ToLeaveResponse(l *domain.Leave, owner *domain.User) LeaveResponse {
	resp := LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		Reason:    l.Reason,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if owner != nil {
		resp.User = &LeaveUser{Name: owner.Name, Email: owner.Email}
	}
	return resp
}
