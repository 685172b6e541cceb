package service

import (
	"context"
	"errors"

	"github.com/Moon-89/HRMIS/internal/domain"
	"github.com/Moon-89/HRMIS/internal/dto"
	"github.com/Moon-89/HRMIS/internal/repository"
)

var (
	ErrLeaveNotFound = errors.New("leave not found")
	// ErrNotLeaveOwner indicates an update attempt by someone other than the
	// requester who filed the leave
	ErrNotLeaveOwner = errors.New("only the owner may edit a leave")
)

// LeaveService defines the interface for leave-request operations
type LeaveService interface {
	// List returns leaves with their owner embedded for manager views
	List(ctx context.Context, filter repository.LeaveFilter) ([]dto.LeaveResponse, error)
	Create(ctx context.Context, req *dto.CreateLeaveRequest, requesterID int64) (*dto.LeaveResponse, error)
	Get(ctx context.Context, id int64) (*dto.LeaveResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLeaveRequest) (*dto.LeaveResponse, error)
	Delete(ctx context.Context, id int64) error
	// ListForUser returns a user's own leaves, optionally filtered by status
	ListForUser(ctx context.Context, userID int64, status string) ([]dto.LeaveResponse, error)
}

type leaveService struct {
	leaves repository.LeaveRepository
	users  repository.UserRepository
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(leaves repository.LeaveRepository, users repository.UserRepository) LeaveService {
	return &leaveService{leaves: leaves, users: users}
}

func (s *leaveService) List(ctx context.Context, filter repository.LeaveFilter) ([]dto.LeaveResponse, error) {
	leaves, err := s.leaves.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		owner, err := s.users.GetByID(ctx, l.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ToLeaveResponse(l, owner))
	}
	return out, nil
}

func (s *leaveService) Create(ctx context.Context, req *dto.CreateLeaveRequest, requesterID int64) (*dto.LeaveResponse, error) {
	ownerID := req.UserID
	if ownerID == 0 {
		ownerID = requesterID
	}

	leave := &domain.Leave{
		UserID:    ownerID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, err
	}

	resp := dto.ToLeaveResponse(leave, nil)
	return &resp, nil
}

func (s *leaveService) Get(ctx context.Context, id int64) (*dto.LeaveResponse, error) {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave == nil {
		return nil, ErrLeaveNotFound
	}

	owner, err := s.users.GetByID(ctx, leave.UserID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToLeaveResponse(leave, owner)
	return &resp, nil
}

func (s *leaveService) Update(ctx context.Context, id int64, req *dto.UpdateLeaveRequest) (*dto.LeaveResponse, error) {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leave == nil {
		return nil, ErrLeaveNotFound
	}

	if leave.UserID != req.UserID {
		return nil, ErrNotLeaveOwner
	}

	if req.StartDate != nil {
		leave.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		leave.EndDate = *req.EndDate
	}
	if req.Reason != nil {
		leave.Reason = *req.Reason
	}
	if req.Status != nil {
		leave.Status = domain.LeaveStatus(*req.Status)
	}

	if err := s.leaves.Update(ctx, leave); err != nil {
		return nil, err
	}

	resp := dto.ToLeaveResponse(leave, nil)
	return &resp, nil
}

func (s *leaveService) Delete(ctx context.Context, id int64) error {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if leave == nil {
		return ErrLeaveNotFound
	}
	return s.leaves.Delete(ctx, id)
}

func (s *leaveService) ListForUser(ctx context.Context, userID int64, status string) ([]dto.LeaveResponse, error) {
	filter := repository.LeaveFilter{
		UserID: userID,
		Status: domain.NormalizeLeaveStatus(status),
	}
	leaves, err := s.leaves.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, dto.ToLeaveResponse(l, nil))
	}
	return out, nil
}
