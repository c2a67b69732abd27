package domain

// Customer is an administrative account that owns promotional banners.
//
// Name and email carry non-empty check constraints so the database rejects
// rows that slip past handler-level validation, mirroring the schema-level
// required fields. Password is stored exactly as provided.
type Customer struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;check:chk_customers_name,name <> ''" json:"name"`
	Email    string `gorm:"not null;check:chk_customers_email,email <> ''" json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}
