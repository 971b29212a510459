package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/config"
	"github.com/fashionhive/storefront/internal/repository/postgres"
)

func main() {
	args := os.Args[1:]
	if len(args) < 2 || len(args)%2 != 0 {
		fmt.Println("Usage: go run cmd/seed-catalog/main.go <brand-collection> <products.json> [<brand-collection> <products.json> ...]")
		fmt.Println("Example: go run cmd/seed-catalog/main.go Khaadi data/khaadi.json Sapphire data/sapphire.json")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, cfg.Database.Schema, logger)
	ctx := context.Background()

	fmt.Printf("Seeding schema %q in database %q\n\n", cfg.Database.Schema, cfg.Database.DBName)
	for i := 0; i < len(args); i += 2 {
		collection, path := args[i], args[i+1]

		products, err := loadFeed(path, collection, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", collection, err)
			os.Exit(1)
		}

		if err := repos.Catalog.ResetCollection(ctx, collection); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset %s: %v\n", collection, err)
			os.Exit(1)
		}
		fmt.Printf("  Cleared existing data in %s\n", collection)

		if len(products) == 0 {
			fmt.Printf("  No products found in %s\n", path)
			continue
		}
		if err := repos.Catalog.InsertProducts(ctx, collection, products); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to insert %s: %v\n", collection, err)
			os.Exit(1)
		}
		fmt.Printf("  Inserted %d products into %s\n", len(products), collection)
	}

	collections, err := repos.Catalog.ListCollections(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list collections: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n✅ Seeding completed successfully!\n\n")
	fmt.Println("Collections in database:")
	for _, c := range collections {
		fmt.Printf("  - %s\n", c)
	}
}
