package server

import (
	"context"
	"net/http"
	"time"

	"github.com/adboardhq/adboard/internal/banner"
	bannerdomain "github.com/adboardhq/adboard/internal/banner/domain"
	"github.com/adboardhq/adboard/internal/config"
	"github.com/adboardhq/adboard/internal/customer"
	customerdomain "github.com/adboardhq/adboard/internal/customer/domain"
	"github.com/adboardhq/adboard/internal/observability"
	obsmiddleware "github.com/adboardhq/adboard/internal/observability/logger"
	"github.com/adboardhq/adboard/internal/upload"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	customer.Module,
	banner.Module,
	upload.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterRoutes()
	}),
	fx.Invoke(RunHTTP),
)

// NewEngine builds the gin engine with the ambient middleware stack:
// panic recovery, request logging, and the catch-all error translator.
func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Params struct {
	fx.In

	Engine      *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	CustomerSvc customerdomain.Service
	BannerSvc   bannerdomain.Service
	Uploads     *upload.Store
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	customerSvc customerdomain.Service
	bannerSvc   bannerdomain.Service
	uploads     *upload.Store
}

func NewServer(p Params) *Server {
	return &Server{
		engine:      p.Engine,
		cfg:         p.Cfg,
		log:         p.Log.Named("http.server"),
		customerSvc: p.CustomerSvc,
		bannerSvc:   p.BannerSvc,
		uploads:     p.Uploads,
	}
}

// RegisterRoutes mounts the public API. The route table is intentionally
// flat and mirrors the admin frontend's expectations, including the
// /customer vs /customers alias for fetching a single row.
func (s *Server) RegisterRoutes() {
	r := s.engine

	r.GET("/customers", s.ListCustomers)
	r.GET("/customers/:id", s.GetCustomerByID)
	r.GET("/customer/:id", s.GetCustomerByID)
	r.POST("/customer", s.CreateCustomer)
	r.PUT("/update/:id", s.UpdateCustomer)
	r.DELETE("/delete/:id", s.DeleteCustomer)
	r.GET("/customers/banners/:id", s.ListCustomerBanners)

	r.GET("/banners", s.ListBanners)
	r.GET("/banners/:id", s.GetBannerByID)
	r.POST("/add", s.CreateBanner)
	r.PUT("/updatebanner/:id", s.UpdateBanner)
	r.DELETE("/deletebanner/:id", s.DeleteBanner)

	r.GET("/images", s.ListImages)
	r.Static("/uploads", s.uploads.Dir())
}

// RunHTTP starts the HTTP listener and wires graceful shutdown into the fx
// lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
