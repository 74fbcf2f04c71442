package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"invoice-analytics/internal/database"
	"invoice-analytics/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeds the schema with sample vendors, customers and invoices spanning the
// trend and forecast windows so every dashboard chart has data.
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "invoice_analytics")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer database.Close(db)

	if err := seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed completed.")
}

func seed(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"payments", "line_items", "invoices", "vendors", "customers"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	vendorNames := []string{
		"Acme Software GmbH", "Northwind Hardware", "Globex Services",
		"Initech Supplies", "Umbrella Utilities", "Stark Marketing",
		"Wayne Consulting", "Hooli Cloud",
	}
	vendors := make([]model.Vendor, 0, len(vendorNames))
	for _, name := range vendorNames {
		addr := name + " HQ, Main Street 1"
		vendors = append(vendors, model.Vendor{Name: name, Address: &addr})
	}
	if err := db.Create(&vendors).Error; err != nil {
		return fmt.Errorf("failed to create vendors: %w", err)
	}

	customers := []model.Customer{
		{Name: "Contoso Ltd"},
		{Name: "Fabrikam Inc"},
		{Name: "Adventure Works"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to create customers: %w", err)
	}

	categories := []string{"Software", "Hardware", "Services", "Supplies", "Utilities", "Marketing"}
	statuses := []string{model.StatusPending, model.StatusPartial, model.StatusPaid}
	now := time.Now().UTC()

	// 60 invoices over the last six months; the last vendor stays empty so
	// the top-10 ranking has a zero-invoice entry to rank last.
	count := 0
	for i := 0; i < 60; i++ {
		vendor := vendors[i%(len(vendors)-1)]
		invoiceDate := now.AddDate(0, 0, -(i * 3)) // every 3 days back
		status := statuses[i%len(statuses)]
		amount := decimal.NewFromFloat(float64(50+i*37) + 0.25).Abs()

		invoice := model.Invoice{
			InvoiceNumber: fmt.Sprintf("INV-%04d", 1000+i),
			InvoiceDate:   invoiceDate,
			TotalAmount:   amount,
			Status:        status,
			VendorID:      vendor.ID,
		}

		// Every 7th invoice stays uncategorized
		if i%7 != 0 {
			invoice.Category = &categories[i%len(categories)]
		}
		// Most invoices carry a scanned document
		if i%5 != 0 {
			url := fmt.Sprintf("https://docs.example.com/invoices/INV-%04d.pdf", 1000+i)
			invoice.DocumentURL = &url
		}
		if i%2 == 0 {
			invoice.CustomerID = &customers[i%len(customers)].ID
		}
		// Unpaid invoices fall due within the forecast window
		if status != model.StatusPaid {
			due := now.AddDate(0, 0, 7+(i%80))
			invoice.DueDate = &due
		}

		invoice.LineItems = []model.LineItem{{
			Description: "Service",
			Quantity:    1,
			UnitPrice:   amount,
			Amount:      amount,
			Category:    invoice.Category,
		}}
		if status == model.StatusPaid {
			invoice.Payments = []model.Payment{{
				PaymentDate:   invoiceDate.AddDate(0, 0, 14),
				Amount:        amount,
				PaymentMethod: "Bank Transfer",
				Reference:     fmt.Sprintf("PAY-%04d", 1000+i),
			}}
		}

		if err := db.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice %s: %w", invoice.InvoiceNumber, err)
		}
		count++
	}

	log.Printf("Created %d vendors, %d customers, %d invoices", len(vendors), len(customers), count)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
