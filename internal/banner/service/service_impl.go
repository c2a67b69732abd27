package service

import (
	"context"
	"strings"

	"github.com/adboardhq/adboard/internal/banner/domain"
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
		log:   p.Log.Named("banner.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Create requires a non-empty image reference; the upload handler rejects
// requests without a file before this point, so ErrImageRequired here guards
// callers that bypass the handler.
func (s *Service) Create(ctx context.Context, req domain.CreateBannerRequest) (domain.Banner, error) {
	if strings.TrimSpace(req.Image) == "" {
		return domain.Banner{}, domain.ErrImageRequired
	}

	banner := domain.Banner{
		ID:         s.genID.Generate().Int64(),
		Name:       req.Name,
		Image:      req.Image,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Status:     req.Status,
		CustomerID: req.CustomerID,
	}

	if err := s.repo.Insert(ctx, s.db, &banner); err != nil {
		s.log.Error("create banner", zap.Error(err))
		return domain.Banner{}, err
	}

	return banner, nil
}

func (s *Service) List(ctx context.Context, req domain.ListBannerRequest) ([]domain.Banner, error) {
	banners, err := s.repo.List(ctx, s.db, domain.ListBannerFilter{
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		return nil, err
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	return banners, nil
}

// GetByID returns nil without error when no banner matches.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Banner, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Banner, error) {
	banners, err := s.repo.ListByCustomer(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	return banners, nil
}

// Update merges the supplied fields into the stored row; a missing id is
// ErrNotFound. A freshly uploaded image arrives as req.Image and replaces the
// stored reference.
func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateBannerRequest) (domain.Banner, error) {
	banner, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Banner{}, err
	}
	if banner == nil {
		return domain.Banner{}, domain.ErrNotFound
	}

	if req.Name != nil {
		banner.Name = *req.Name
	}
	if req.Image != nil {
		banner.Image = *req.Image
	}
	if req.StartAt != nil {
		banner.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		banner.EndAt = *req.EndAt
	}
	if req.Status != nil {
		banner.Status = *req.Status
	}
	if req.CustomerID != nil {
		banner.CustomerID = *req.CustomerID
	}

	if err := s.repo.Update(ctx, s.db, banner); err != nil {
		s.log.Error("update banner", zap.Int64("id", id), zap.Error(err))
		return domain.Banner{}, err
	}

	return *banner, nil
}

// Delete removes the banner unconditionally and reports the removed count;
// a missing id is a zero count, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, s.db, id)
}
