package models

import (
	"time"
)

// PasswordMask replaces the password in every administrator response
const PasswordMask = "********"

// Administrator is a user allowed to manage the API
type Administrator struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;index" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:10;not null" json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Administrator) TableName() string {
	return "administradores"
}

func (a Administrator) GetID() uint    { return a.ID }
func (a *Administrator) SetID(id uint) { a.ID = id }

// AdministratorDTO is the payload accepted to register an administrator
type AdministratorDTO struct {
	Email    string `json:"email" example:"editor@teste.com"`
	Password string `json:"password" example:"123456"`
	Role     string `json:"role" example:"Editor" enums:"Admin,Editor"`
}

// LoginDTO holds the credentials sent to the login endpoint
type LoginDTO struct {
	Email    string `json:"email" example:"administrador@teste.com"`
	Password string `json:"password" example:"123456"`
}

// AdministratorView is the representation returned to clients
type AdministratorView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// NewAdministratorView builds the client representation with the password masked
func NewAdministratorView(a Administrator) AdministratorView {
	return AdministratorView{
		ID:       a.ID,
		Email:    a.Email,
		Password: PasswordMask,
		Role:     a.Role,
	}
}

// LoggedAdministrator is returned by a successful login
type LoggedAdministrator struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}
