package models

// All returns every model in dependency order, ready for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Role{},
		&AccessLevel{},
		&User{},
		&Zone{},
		&Slot{},
		&Ship{},
		&PickupAppointment{},
		&Container{},
		&Ticket{},
		&Invoice{},
		&Payment{},
		&Report{},
	}
}
