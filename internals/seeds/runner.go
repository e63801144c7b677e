package seeds

import (
	"gorm.io/gorm"

	lookups "majalahku_backend/internals/seeds/lookups"
	rates "majalahku_backend/internals/seeds/rates"
	users "majalahku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	lookups.SeedMultimediaTypesFromJSON(db, "internals/seeds/lookups/data_multimedia_types.json")
	rates.SeedPaymentRatesFromJSON(db, "internals/seeds/rates/data_payment_rates.json")
}
