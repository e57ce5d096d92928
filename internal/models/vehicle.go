package models

import (
	"time"
)

// MinVehicleYear is the last model year considered too old to register
const MinVehicleYear = 1950

// Vehicle represents a registered vehicle
type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Brand     string    `gorm:"size:100;not null" json:"brand"`
	Year      int       `gorm:"not null" json:"year"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Vehicle) TableName() string {
	return "veiculos"
}

func (v Vehicle) GetID() uint    { return v.ID }
func (v *Vehicle) SetID(id uint) { v.ID = id }

// VehicleDTO is the payload accepted to create or replace a vehicle
type VehicleDTO struct {
	Name  string `json:"name" example:"Fusca"`
	Brand string `json:"brand" example:"VW"`
	Year  int    `json:"year" example:"1970"`
}

// Apply copies the DTO fields over v
func (d VehicleDTO) Apply(v *Vehicle) {
	v.Name = d.Name
	v.Brand = d.Brand
	v.Year = d.Year
}
