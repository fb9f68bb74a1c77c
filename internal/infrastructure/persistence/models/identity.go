package models

import (
	"time"

	"github.com/slimatic/zakapp-sub007/internal/domain/identity"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
)

// UserModel is the persistence model for the User aggregate.
type UserModel struct {
	AggregateModel
	Email                string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash         string              `gorm:"type:varchar(255);not null"`
	DisplayName          string              `gorm:"type:varchar(200)"`
	Status               identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	PreferredMethodology string              `gorm:"type:varchar(30);not null;default:'standard'"`
	Currency             string              `gorm:"type:varchar(3);not null;default:'USD'"`
	LastLoginAt          *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User aggregate.
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		DisplayName:          m.DisplayName,
		Status:               m.Status,
		PreferredMethodology: m.PreferredMethodology,
		Currency:             valueobject.Currency(m.Currency),
		LastLoginAt:          m.LastLoginAt,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// FromDomain populates the persistence model from a domain User aggregate.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Status = u.Status
	m.PreferredMethodology = u.PreferredMethodology
	m.Currency = string(u.Currency)
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
