// Package model holds the GORM persistence models. Each type mirrors one table.
package model

import "time"

// AccountColumns are the columns shared by the rescuer, authority and organization tables.
// Email carries a per-table UNIQUE constraint that is the source of truth for duplicates.
type AccountColumns struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Email     string    `gorm:"type:varchar(255);not null;unique"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(128);not null"`
	State     string    `gorm:"type:varchar(128);not null"`
	Country   string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// AccountRow is implemented by every per-variant account model.
type AccountRow interface {
	Columns() *AccountColumns
	TableName() string
}

// RescuerModel mirrors the 'rescuer' table.
type RescuerModel struct {
	AccountColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (RescuerModel) TableName() string {
	return "rescuer"
}

// Columns returns the shared account columns.
func (m *RescuerModel) Columns() *AccountColumns {
	return &m.AccountColumns
}

// AuthorityModel mirrors the 'authority' table.
type AuthorityModel struct {
	AccountColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorityModel) TableName() string {
	return "authority"
}

// Columns returns the shared account columns.
func (m *AuthorityModel) Columns() *AccountColumns {
	return &m.AccountColumns
}

// OrganizationModel mirrors the 'organization' table.
type OrganizationModel struct {
	AccountColumns `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organization"
}

// Columns returns the shared account columns.
func (m *OrganizationModel) Columns() *AccountColumns {
	return &m.AccountColumns
}
