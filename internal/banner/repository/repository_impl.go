package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/adboardhq/adboard/internal/banner/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, banner *domain.Banner) error {
	return db.WithContext(ctx).Create(banner).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Banner, error) {
	var banner domain.Banner
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&banner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListBannerFilter) ([]domain.Banner, error) {
	var banners []domain.Banner
	stmt := db.WithContext(ctx).Model(&domain.Banner{})
	if filter.Name != "" {
		stmt = stmt.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	} else {
		// The unfiltered listing carries the owning customer, limited to
		// identity fields.
		stmt = stmt.Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		})
	}
	if err := stmt.Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *repo) ListByCustomer(ctx context.Context, db *gorm.DB, customerID int64) ([]domain.Banner, error) {
	var banners []domain.Banner
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, banner *domain.Banner) error {
	return db.WithContext(ctx).Save(banner).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Banner{})
	return res.RowsAffected, res.Error
}
