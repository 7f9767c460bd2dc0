package postgres

import (
	"pod/internal/adapters/out/postgres/billrepo"
	"pod/internal/adapters/out/postgres/deliveryrepo"
	"pod/internal/adapters/out/postgres/reportrepo"
	"pod/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Tables lists every table Migrate manages, children before parents.
var Tables = []string{"proof_images", "deliveries", "bills", "reports", "users"}

// Migrate creates or updates the schema for every stored aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&billrepo.BillDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.ProofImageDTO{},
		&reportrepo.ReportDTO{},
	)
}
