package repository

import (
	"context"

	"github.com/coworkly/coworking-booking/internal/models"
	"gorm.io/gorm"
)

type FacilityRepository interface {
	FindAll(ctx context.Context) ([]models.Facility, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Facility, error)
}

type facilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]models.Facility, error) {
	var facilities []models.Facility
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *facilityRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Facility, error) {
	var facilities []models.Facility
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}
