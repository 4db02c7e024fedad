package postgres

import "github.com/ironclub/gym-server/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.ClassBlock{},
	&entity.Attendance{},
	&entity.Reservation{},
	&entity.Event{},
	&entity.Product{},
	&entity.Payment{},
	&entity.Notification{},
}
