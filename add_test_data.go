//go:build ignore
// +build ignore

// Helper script to add sample students and products to the databases
// Run with: go run add_test_data.go [data-dir]

package main

import (
	"context"
	"log"
	"os"

	"github.com/thenoetrevino/ledger/internal/app"
	"github.com/thenoetrevino/ledger/internal/config"
	productservice "github.com/thenoetrevino/ledger/internal/services/product"
	studentservice "github.com/thenoetrevino/ledger/internal/services/student"
)

func main() {
	ctx := context.Background()

	cfg := config.Default()
	if len(os.Args) > 1 {
		cfg.DataDir = os.Args[1]
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer application.Close()

	if err := application.StudentService.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create Students table: %v", err)
	}
	if err := application.ProductService.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create Product table: %v", err)
	}

	students := []studentservice.CreateStudentRequest{
		{Name: "Alice", Department: "CS", Marks: 88.5},
		{Name: "Bob", Department: "Math", Marks: 72},
		{Name: "Chidi", Department: "Philosophy", Marks: 95.25},
	}
	for _, req := range students {
		created, err := application.StudentService.CreateStudent(ctx, req)
		if err != nil {
			log.Printf("Error creating student '%s': %v", req.Name, err)
			continue
		}
		log.Printf("Created student %d: %s", created.ID, created.Name)
	}

	products := []productservice.CreateProductRequest{
		{Name: "Widget", Price: 2.5, Quantity: 10},
		{Name: "Gadget", Price: 19.99, Quantity: 3},
		{Name: "Sprocket", Price: 0.75, Quantity: 250},
	}
	for _, req := range products {
		created, err := application.ProductService.CreateProduct(ctx, req)
		if err != nil {
			log.Printf("Error creating product '%s': %v", req.Name, err)
			continue
		}
		log.Printf("Created product %d: %s", created.ID, created.Name)
	}

	log.Println("Sample data added")
}
