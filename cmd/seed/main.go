package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/nvelasco/cartify-backend/pkg/config"
	"github.com/nvelasco/cartify-backend/pkg/db"
	"github.com/nvelasco/cartify-backend/pkg/db/models"
	"github.com/nvelasco/cartify-backend/pkg/logger"
)

// Seeds a sample cart for local development. Running it twice creates
// two carts; carts are cheap and the API has no unique code constraint.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	ctx := context.Background()
	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		cart := &models.Cart{Code: "TestCartONE"}
		if err := tx.Create(cart).Error; err != nil {
			return err
		}

		items := []models.CartItem{
			{CartID: cart.ID, Code: "SKU-COFFEE", Name: "Coffee Beans", Price: 1250, Quantity: 2},
			{CartID: cart.ID, Code: "SKU-MUG", Name: "Stoneware Mug", Price: 900, Quantity: 1},
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "sample cart seeded")
}
