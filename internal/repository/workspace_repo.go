package repository

import (
	"context"

	"github.com/coworkly/coworking-booking/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	Save(ctx context.Context, workspace *models.Workspace) error
	FindByID(ctx context.Context, id uint) (*models.Workspace, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Workspace, error)
	FindAll(ctx context.Context) ([]models.Workspace, error)
	ReplaceFacilities(ctx context.Context, workspace *models.Workspace, facilities []models.Facility) error
}

type workspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

func (r *workspaceRepository) Save(ctx context.Context, workspace *models.Workspace) error {
	return r.db.WithContext(ctx).Save(workspace).Error
}

func (r *workspaceRepository) FindByID(ctx context.Context, id uint) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.WithContext(ctx).Preload("Facilities").First(&workspace, id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

// FindByIDForUpdate acquires a row-level lock on the workspace within the
// given transaction, serializing concurrent booking attempts for it.
func (r *workspaceRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&workspace, id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *workspaceRepository) FindAll(ctx context.Context) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := r.db.WithContext(ctx).Preload("Facilities").Order("id ASC").Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *workspaceRepository) ReplaceFacilities(ctx context.Context, workspace *models.Workspace, facilities []models.Facility) error {
	return r.db.WithContext(ctx).Model(workspace).Association("Facilities").Replace(facilities)
}
