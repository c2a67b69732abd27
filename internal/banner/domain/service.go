package domain

import (
	"context"
	"errors"
)

type CreateBannerRequest struct {
	Name       string
	Image      string
	StartAt    string
	EndAt      string
	Status     bool
	CustomerID int64
}

// UpdateBannerRequest carries a partial update. A nil field means "leave
// unchanged"; a non-nil field overwrites, even with a falsy value, so an
// explicit clear is distinguishable from omission.
type UpdateBannerRequest struct {
	Name       *string
	Image      *string
	StartAt    *string
	EndAt      *string
	Status     *bool
	CustomerID *int64
}

type ListBannerRequest struct {
	Name string
}

type Service interface {
	Create(ctx context.Context, req CreateBannerRequest) (Banner, error)
	List(ctx context.Context, req ListBannerRequest) ([]Banner, error)
	GetByID(ctx context.Context, id int64) (*Banner, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Banner, error)
	Update(ctx context.Context, id int64, req UpdateBannerRequest) (Banner, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

var (
	ErrImageRequired = errors.New("image_required")
	ErrNotFound      = errors.New("not_found")
)
