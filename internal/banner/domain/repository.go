package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListBannerFilter struct {
	Name string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, banner *Banner) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Banner, error)
	List(ctx context.Context, db *gorm.DB, filter ListBannerFilter) ([]Banner, error)
	ListByCustomer(ctx context.Context, db *gorm.DB, customerID int64) ([]Banner, error)
	Update(ctx context.Context, db *gorm.DB, banner *Banner) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
