package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/Quentin693/NestOrProject/internal/cart"
	"github.com/Quentin693/NestOrProject/internal/db"
	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/menu"
	"github.com/Quentin693/NestOrProject/internal/order"
	"github.com/Quentin693/NestOrProject/internal/pizza"
	"github.com/Quentin693/NestOrProject/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	store := os.Getenv("STORE")
	if store == "" {
		store = "file"
	}
	if store == "postgres" && os.Getenv("DATABASE_URL") == "" {
		log.Fatal("Missing env var: DATABASE_URL (required when STORE=postgres)")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// ───────────────────────── STORES ─────────────────────────
	var (
		pizzaRepo   pizza.Repository
		drinkRepo   drink.Repository
		dessertRepo dessert.Repository
		orderRepo   order.Repository
	)

	switch store {
	case "postgres":
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		pizzaRepo = pizza.NewPostgresRepository(pgDB)
		drinkRepo = drink.NewPostgresRepository(pgDB)
		dessertRepo = dessert.NewPostgresRepository(pgDB)
		orderRepo = order.NewPostgresRepository(pgDB)

	case "file":
		pizzaRepo = pizza.NewSeededRepository()
		drinkRepo = drink.NewSeededRepository()
		dessertRepo = dessert.NewSeededRepository()

		fileRepo, err := order.NewFileRepository(dataDir)
		if err != nil {
			log.Fatal("Order store init failed:", err)
		}
		orderRepo = fileRepo

	default:
		log.Fatalf("Unknown STORE %q (use file or postgres)", store)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	pizzaService := pizza.NewService(pizzaRepo)
	drinkService := drink.NewService(drinkRepo)
	dessertService := dessert.NewService(dessertRepo)

	menuService := menu.NewService(pizzaService, drinkService, dessertService)
	cartService := cart.NewService(pizzaService, drinkService, dessertService)
	orderService := order.NewService(orderRepo, pizzaService, drinkService, dessertService)

	// ───────────────────────── ROUTER ─────────────────────────
	corsMiddleware := cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	r := router.New(router.Handlers{
		Pizza:   pizza.NewHandler(pizzaService),
		Drink:   drink.NewHandler(drinkService),
		Dessert: dessert.NewHandler(dessertService),
		Menu:    menu.NewHandler(menuService),
		Cart:    cart.NewHandler(cartService),
		Order:   order.NewHandler(orderService),
	}, corsMiddleware)

	// ───────────────────────── START ─────────────────────────
	log.Printf("API running at http://localhost:%s (store=%s)", port, store)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
