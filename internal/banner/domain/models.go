package domain

import (
	customerdomain "github.com/adboardhq/adboard/internal/customer/domain"
)

// Banner is a promotional banner owned by a customer.
//
// Image holds the relative path produced by the upload store and is required
// at creation. StartAt and EndAt are text-encoded dates with no ordering
// constraint. CustomerID is a referential association only: it is not
// validated for existence at write time and carries no foreign key, so a
// deleted customer leaves orphaned banners behind.
type Banner struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null;check:chk_banners_name,name <> ''" json:"name"`
	Image      string `gorm:"not null;check:chk_banners_image,image <> ''" json:"image"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
	Status     bool   `json:"status"`
	CustomerID int64  `gorm:"not null;index" json:"customerId"`

	Customer *customerdomain.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
