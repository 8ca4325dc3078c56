package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package maps. Order
// matters: parents before children so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&personModel{},
		&phoneNumberModel{},
		&employeeModel{},
		&roomModel{},
		&roomBookingModel{},
		&foodModel{},
		&foodOrderModel{},
		&serviceModel{},
		&serviceOrderModel{},
		&paymentModel{},
		&billingModel{},
		&inventoryItemModel{},
	)
}
