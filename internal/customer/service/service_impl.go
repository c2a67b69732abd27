package service

import (
	"context"
	"strings"

	"github.com/adboardhq/adboard/internal/customer/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Create admits a customer after every supplied field matches its pattern.
// The rules are absent-or-matches; required fields left empty fall through to
// the schema constraints and surface as a persistence failure.
func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	if !domain.ValidName(req.Name) ||
		!domain.ValidEmail(req.Email) ||
		!domain.ValidPhone(req.Phone) {
		return domain.Customer{}, domain.ErrInvalidData
	}

	customer := domain.Customer{
		ID:       s.genID.Generate().Int64(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		s.log.Error("create customer", zap.Error(err))
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) ([]domain.Customer, error) {
	customers, err := s.repo.List(ctx, s.db, domain.ListCustomerFilter{
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

// GetByID returns nil without error when no customer matches; callers decide
// how to represent absence.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

// Update merges the supplied fields into the stored row. Supplied values are
// re-checked against the admission patterns before the merge.
func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	if (req.Name != nil && !domain.ValidName(*req.Name)) ||
		(req.Email != nil && !domain.ValidEmail(*req.Email)) ||
		(req.Phone != nil && !domain.ValidPhone(*req.Phone)) {
		return domain.Customer{}, domain.ErrInvalidData
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Password != nil {
		customer.Password = *req.Password
	}

	if err := s.repo.Update(ctx, s.db, customer); err != nil {
		s.log.Error("update customer", zap.Int64("id", id), zap.Error(err))
		return domain.Customer{}, err
	}

	return *customer, nil
}

// Delete removes the customer unconditionally and reports how many rows went
// away. A missing id is a zero count, not an error. Banners referencing the
// customer keep their customerId.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, s.db, id)
}
