package server

import (
	"errors"
	"net/http"

	customerdomain "github.com/adboardhq/adboard/internal/customer/domain"
	"github.com/gin-gonic/gin"
)

type createCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type updateCustomerRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
		Name: c.Query("name"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	customer, err := s.customerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// Absence is not an error on this route: the body is a JSON null.
	c.JSON(http.StatusOK, customer)
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	_, err := s.customerSvc.Create(c.Request.Context(), customerdomain.CreateCustomerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if errors.Is(err, customerdomain.ErrInvalidData) {
		c.JSON(http.StatusOK, gin.H{"msg": "Please enter correct data"})
		return
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	customer, err := s.customerSvc.Update(c.Request.Context(), id, customerdomain.UpdateCustomerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, customerdomain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Customer not found",
			"data":    gin.H{},
		})
	case errors.Is(err, customerdomain.ErrInvalidData):
		c.JSON(http.StatusOK, gin.H{"msg": "Please enter correct data"})
	case err != nil:
		AbortWithError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Customer updated",
			"data":    customer,
		})
	}
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	count, err := s.customerSvc.Delete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer deleted",
		"count":   count,
	})
}

func (s *Server) ListCustomerBanners(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	banners, err := s.bannerSvc.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, banners)
}
