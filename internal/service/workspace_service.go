package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coworkly/coworking-booking/internal/models"
	"github.com/coworkly/coworking-booking/internal/repository"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrNotOwner          = errors.New("you are not the owner of this workspace")
)

// WorkspaceUpdate carries optional field changes; nil means unchanged.
type WorkspaceUpdate struct {
	Name         *string
	Address      *string
	Description  *string
	PricePerHour *float64
	Capacity     *int
	FacilityIDs  []uint
}

type WorkspaceService interface {
	ListWorkspaces(ctx context.Context) ([]models.Workspace, error)
	GetWorkspace(ctx context.Context, id uint) (*models.Workspace, error)
	CreateWorkspace(ctx context.Context, adminID uint, workspace *models.Workspace, facilityIDs []uint) error
	UpdateWorkspace(ctx context.Context, adminID, id uint, upd WorkspaceUpdate) (*models.Workspace, error)
	ListFacilities(ctx context.Context) ([]models.Facility, error)
}

type workspaceService struct {
	workspaceRepo repository.WorkspaceRepository
	facilityRepo  repository.FacilityRepository
}

func NewWorkspaceService(workspaceRepo repository.WorkspaceRepository, facilityRepo repository.FacilityRepository) WorkspaceService {
	return &workspaceService{workspaceRepo: workspaceRepo, facilityRepo: facilityRepo}
}

func (s *workspaceService) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	return s.workspaceRepo.FindAll(ctx)
}

func (s *workspaceService) GetWorkspace(ctx context.Context, id uint) (*models.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrWorkspaceNotFound
	}
	return workspace, nil
}

func (s *workspaceService) CreateWorkspace(ctx context.Context, adminID uint, workspace *models.Workspace, facilityIDs []uint) error {
	workspace.AdminID = adminID

	if len(facilityIDs) > 0 {
		facilities, err := s.facilityRepo.FindByIDs(ctx, facilityIDs)
		if err != nil {
			return fmt.Errorf("resolve facilities: %w", err)
		}
		workspace.Facilities = facilities
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	return nil
}

func (s *workspaceService) UpdateWorkspace(ctx context.Context, adminID, id uint, upd WorkspaceUpdate) (*models.Workspace, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrWorkspaceNotFound
	}
	if workspace.AdminID != adminID {
		return nil, ErrNotOwner
	}

	if upd.Name != nil {
		workspace.Name = *upd.Name
	}
	if upd.Address != nil {
		workspace.Address = *upd.Address
	}
	if upd.Description != nil {
		workspace.Description = *upd.Description
	}
	if upd.PricePerHour != nil {
		workspace.PricePerHour = *upd.PricePerHour
	}
	if upd.Capacity != nil {
		workspace.Capacity = *upd.Capacity
	}

	if upd.FacilityIDs != nil {
		facilities, err := s.facilityRepo.FindByIDs(ctx, upd.FacilityIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve facilities: %w", err)
		}
		if err := s.workspaceRepo.ReplaceFacilities(ctx, workspace, facilities); err != nil {
			return nil, fmt.Errorf("replace facilities: %w", err)
		}
		workspace.Facilities = facilities
	}

	if err := s.workspaceRepo.Save(ctx, workspace); err != nil {
		return nil, fmt.Errorf("save workspace: %w", err)
	}
	return workspace, nil
}

func (s *workspaceService) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	return s.facilityRepo.FindAll(ctx)
}
