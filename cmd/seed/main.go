// cmd/seed/main.go
package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	fs "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/firestore"
	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
	appcfg "github.com/MhmdMaazin/ecommerce-platform/internal/infra/config"
)

// Sample catalog written by the seeding process. Products are only ever
// created here; the serving application never updates or deletes them.
var sampleProducts = []productdom.Product{
	{
		ID:          "wireless-headphones",
		Title:       "Wireless Headphones",
		Description: "High-quality wireless headphones with noise cancellation",
		Price:       decimal.RequireFromString("99.99"),
		Currency:    "USD",
		Images:      []string{"https://res.cloudinary.com/dixrov4zs/image/upload/v1758431079/samples/ecommerce/leather-bag-gray.jpg"},
		Variants:    productdom.Variants{Sizes: []string{"One Size"}, Colors: []string{"Black", "White"}},
		Stock:       100,
		VendorID:    "vendor1",
		Category:    "Electronics",
	},
	{
		ID:          "cotton-t-shirt",
		Title:       "Cotton T-Shirt",
		Description: "Comfortable 100% cotton t-shirt",
		Price:       decimal.RequireFromString("19.99"),
		Currency:    "USD",
		Images:      []string{"https://res.cloudinary.com/dixrov4zs/image/upload/v1758431079/samples/ecommerce/leather-bag-gray.jpg"},
		Variants:    productdom.Variants{Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"Red", "Blue", "Green"}},
		Stock:       50,
		VendorID:    "vendor2",
		Category:    "Men",
	},
	{
		ID:          "coffee-mug",
		Title:       "Coffee Mug",
		Description: "Ceramic coffee mug with unique design",
		Price:       decimal.RequireFromString("12.99"),
		Currency:    "USD",
		Images:      []string{"https://res.cloudinary.com/dixrov4zs/image/upload/v1758431085/samples/smile.jpg"},
		Variants:    productdom.Variants{Colors: []string{"White", "Black"}},
		Stock:       75,
		VendorID:    "vendor3",
		Category:    "Home",
	},
	{
		ID:          "winter-jacket",
		Title:       "Winter Jacket",
		Description: "Warm winter jacket for cold weather",
		Price:       decimal.RequireFromString("79.99"),
		Currency:    "USD",
		Images:      []string{"https://res.cloudinary.com/dixrov4zs/image/upload/v1758431085/samples/smile.jpg"},
		Variants:    productdom.Variants{Sizes: []string{"S", "M", "L"}, Colors: []string{"Black", "Blue", "Red"}},
		Stock:       30,
		VendorID:    "vendor4",
		Category:    "Women",
	},
	{
		ID:          "running-shoes",
		Title:       "Running Shoes",
		Description: "Comfortable running shoes for athletes",
		Price:       decimal.RequireFromString("89.99"),
		Currency:    "USD",
		Images:      []string{"https://res.cloudinary.com/dixrov4zs/image/upload/v1758431085/samples/smile.jpg"},
		Variants:    productdom.Variants{Sizes: []string{"8", "9", "10", "11"}, Colors: []string{"Black", "White", "Blue"}},
		Stock:       40,
		VendorID:    "vendor5",
		Category:    "Men",
	},
}

func main() {
	ctx := context.Background()
	cfg := appcfg.Load()

	if cfg.FirestoreProjectID == "" {
		log.Fatal("seed: FIRESTORE_PROJECT_ID is required")
	}

	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		log.Fatalf("seed: firestore.NewClient: %v", err)
	}
	defer client.Close()

	repo := fs.NewProductRepositoryFS(client)
	if err := repo.Seed(ctx, sampleProducts); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seed: %d products written", len(sampleProducts))
}
