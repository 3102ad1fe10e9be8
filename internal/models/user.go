package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = 0
	RoleEmployee = 1
)

type User struct {
	gorm.Model

	UserID       int     `gorm:"uniqueIndex;not null" json:"userId"`
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	Password     string  `gorm:"not null" json:"-"`
	Role         int     `gorm:"not null;default:1" json:"role"`
	ContractType string  `json:"contractType"` // "PartTime" or "Permanent"
	HourlyPay    float64 `json:"hourlyPay"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	EmailAddress string  `json:"emailAddress"`
	PhoneNo      string  `json:"phoneNo"`
	Address      string  `json:"address"`
	Address2     string  `json:"address2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`

	// Admin-assigned snapshots of the projects and clients this employee may
	// log time against. Denormalized on purpose; validated against the
	// clients table at write time.
	Projects datatypes.JSON `json:"projects"`
	Clients  datatypes.JSON `json:"clients"`
}
