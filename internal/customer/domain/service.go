package domain

import (
	"context"
	"errors"
)

type CreateCustomerRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// UpdateCustomerRequest carries a partial update. A nil field means "leave
// unchanged"; a non-nil field overwrites, even with an empty value. This
// keeps an intentional clear distinguishable from omission.
type UpdateCustomerRequest struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

type ListCustomerRequest struct {
	Name string
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	List(ctx context.Context, req ListCustomerRequest) ([]Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Update(ctx context.Context, id int64, req UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

var (
	ErrInvalidData = errors.New("invalid_data")
	ErrNotFound    = errors.New("not_found")
)
