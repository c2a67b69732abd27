package server

import (
	"errors"
	"net/http"

	bannerdomain "github.com/adboardhq/adboard/internal/banner/domain"
	"github.com/adboardhq/adboard/internal/upload"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListBanners(c *gin.Context) {
	banners, err := s.bannerSvc.List(c.Request.Context(), bannerdomain.ListBannerRequest{
		Name: c.Query("name"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, banners)
}

func (s *Server) GetBannerByID(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	banner, err := s.bannerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

// CreateBanner accepts a multipart form with a required image attachment.
// The file is rejected before anything touches the database.
func (s *Server) CreateBanner(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Image is required"})
		return
	}

	image, err := s.uploads.Save(fh)
	if errors.Is(err, upload.ErrUnsupportedType) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Please, upload an image"})
		return
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status, err := parseOptionalBool(c.PostForm("status"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	customerID, err := parseOptionalInt64(c.PostForm("customerId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	req := bannerdomain.CreateBannerRequest{
		Name:    c.PostForm("name"),
		Image:   image,
		StartAt: c.PostForm("startAt"),
		EndAt:   c.PostForm("endAt"),
	}
	if status != nil {
		req.Status = *status
	}
	if customerID != nil {
		req.CustomerID = *customerID
	}

	if _, err := s.bannerSvc.Create(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Banner created successfully"})
}

// UpdateBanner merges the supplied multipart fields; the image attachment is
// optional and replaces the stored reference when present. Form fields that
// were not sent at all are left untouched.
func (s *Server) UpdateBanner(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	req := bannerdomain.UpdateBannerRequest{
		Name:    formValue(c, "name"),
		StartAt: formValue(c, "startAt"),
		EndAt:   formValue(c, "endAt"),
	}

	if raw := formValue(c, "status"); raw != nil {
		status, err := parseOptionalBool(*raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.Status = status
	}
	if raw := formValue(c, "customerId"); raw != nil {
		customerID, err := parseOptionalInt64(*raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.CustomerID = customerID
	}

	if fh, err := c.FormFile("image"); err == nil {
		image, err := s.uploads.Save(fh)
		if errors.Is(err, upload.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Please, upload an image"})
			return
		}
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.Image = &image
	}

	_, err = s.bannerSvc.Update(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, bannerdomain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Banner not found"})
	case err != nil:
		AbortWithError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Banner updated successfully"})
	}
}

func (s *Server) DeleteBanner(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	count, err := s.bannerSvc.Delete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Banner deleted",
		"count":   count,
	})
}
