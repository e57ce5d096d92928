package store

import (
	"strings"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"gorm.io/gorm"
)

// AdministratorEmail matches administrators by exact email
func AdministratorEmail(email string) Filter[models.Administrator] {
	return Filter[models.Administrator]{
		Apply: func(db *gorm.DB) *gorm.DB {
			return db.Where("email = ?", email)
		},
		Match: func(a models.Administrator) bool {
			return a.Email == email
		},
	}
}

// VehicleName matches vehicles whose name contains name, ignoring case
func VehicleName(name string) Filter[models.Vehicle] {
	return containsFilter("name", name, func(v models.Vehicle) string { return v.Name })
}

// VehicleBrand matches vehicles whose brand contains brand, ignoring case
func VehicleBrand(brand string) Filter[models.Vehicle] {
	return containsFilter("brand", brand, func(v models.Vehicle) string { return v.Brand })
}

func containsFilter[T any](column, value string, field func(T) string) Filter[T] {
	needle := strings.ToLower(value)
	return Filter[T]{
		Apply: func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER("+column+") LIKE ?", "%"+needle+"%")
		},
		Match: func(entity T) bool {
			return strings.Contains(strings.ToLower(field(entity)), needle)
		},
	}
}
