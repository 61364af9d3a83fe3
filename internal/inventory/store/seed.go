package store

import "github.com/adilbekov/stockledger/internal/inventory/domain"

// Sample fixtures used by the first-open bootstrap. Fresh slices are
// returned on every call so callers can never mutate the seed.

func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "P001",
			Name:        "Laptop Pro 15",
			SKU:         "LP-001",
			Category:    "Electronics",
			Stock:       25,
			MinStock:    10,
			Price:       1299.99,
			Supplier:    "TechSupply Inc",
			Description: "High-performance business laptop",
			LastUpdated: "2024-01-15",
		},
		{
			ID:          "P002",
			Name:        "Wireless Mouse",
			SKU:         "WM-002",
			Category:    "Electronics",
			Stock:       150,
			MinStock:    50,
			Price:       29.99,
			Supplier:    "Peripherals Co",
			Description: "Ergonomic wireless mouse",
			LastUpdated: "2024-01-14",
		},
		{
			ID:          "P003",
			Name:        "Office Chair",
			SKU:         "OC-003",
			Category:    "Furniture",
			Stock:       12,
			MinStock:    5,
			Price:       249.99,
			Supplier:    "Furniture World",
			Description: "Ergonomic office chair",
			LastUpdated: "2024-01-13",
		},
		{
			ID:          "P004",
			Name:        "Notebook Set",
			SKU:         "NS-004",
			Category:    "Stationery",
			Stock:       8,
			MinStock:    20,
			Price:       12.99,
			Supplier:    "Paper Products Ltd",
			Description: "Set of 5 premium notebooks",
			LastUpdated: "2024-01-12",
		},
		{
			ID:          "P005",
			Name:        "Coffee Maker",
			SKU:         "CM-005",
			Category:    "Appliances",
			Stock:       30,
			MinStock:    15,
			Price:       89.99,
			Supplier:    "Home Appliances Inc",
			Description: "Automatic drip coffee maker",
			LastUpdated: "2024-01-11",
		},
	}
}

func SampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          "T001",
			ProductID:   "P001",
			ProductName: "Laptop Pro 15",
			Type:        domain.MovementIn,
			Quantity:    10,
			Date:        "2024-01-10",
			Notes:       "Initial stock",
			User:        "Admin",
		},
		{
			ID:          "T002",
			ProductID:   "P002",
			ProductName: "Wireless Mouse",
			Type:        domain.MovementIn,
			Quantity:    100,
			Date:        "2024-01-10",
			Notes:       "Bulk order",
			User:        "Admin",
		},
		{
			ID:          "T003",
			ProductID:   "P001",
			ProductName: "Laptop Pro 15",
			Type:        domain.MovementOut,
			Quantity:    5,
			Date:        "2024-01-12",
			Notes:       "Customer order #12345",
			User:        "Sales",
		},
		{
			ID:          "T004",
			ProductID:   "P004",
			ProductName: "Notebook Set",
			Type:        domain.MovementOut,
			Quantity:    12,
			Date:        "2024-01-13",
			Notes:       "School supply order",
			User:        "Sales",
		},
	}
}

func SampleSuppliers() []domain.Supplier {
	return []domain.Supplier{
		{
			ID:      "S001",
			Name:    "TechSupply Inc",
			Contact: "John Smith",
			Email:   "john@techsupply.com",
			Phone:   "+1-555-1234",
			Address: "123 Tech Street, Silicon Valley",
		},
		{
			ID:      "S002",
			Name:    "Peripherals Co",
			Contact: "Sarah Johnson",
			Email:   "sarah@peripherals.co",
			Phone:   "+1-555-5678",
			Address: "456 Gadget Ave, Tech City",
		},
		{
			ID:      "S003",
			Name:    "Furniture World",
			Contact: "Mike Wilson",
			Email:   "mike@furnitureworld.com",
			Phone:   "+1-555-9012",
			Address: "789 Design Blvd, Metro City",
		},
		{
			ID:      "S004",
			Name:    "Paper Products Ltd",
			Contact: "Lisa Brown",
			Email:   "lisa@paperproducts.com",
			Phone:   "+1-555-3456",
			Address: "321 Stationery Rd, Business Park",
		},
	}
}
