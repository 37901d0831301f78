package memory

import (
	"time"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/slug"
)

// SeedProducts returns the demo catalog. IDs and ordering are stable so that
// clients can hold references across restarts.
func SeedProducts() []domain.Product {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{
		{
			ID:              "1",
			Name:            "Premium Wireless Headphones",
			Description:     "Experience crystal-clear audio with our premium wireless headphones. Features active noise cancellation, 30-hour battery life, and ultra-comfortable ear cushions.",
			Price:           24999,
			DiscountPercent: 10,
			Rating:          4.5,
			Stock:           45,
			Brand:           "AudioTech",
			Category:        "Electronics",
			Thumbnail:       "/images/products/headphones-thumb.jpg",
			Images: []string{
				"/images/products/headphones-1.jpg",
				"/images/products/headphones-2.jpg",
			},
			Features: []string{
				"Active Noise Cancellation",
				"30-hour battery life",
				"Bluetooth 5.2 connectivity",
				"Built-in microphone for calls",
			},
			Specifications: map[string]string{
				"Battery Life":  "30 hours",
				"Connectivity":  "Bluetooth 5.2",
				"Weight":        "250g",
				"Charging Time": "2 hours",
			},
			Reviews: []domain.Review{
				{
					ID:       "r1",
					UserID:   "u42",
					UserName: "Sarah M.",
					Rating:   5,
					Comment:  "Best headphones I've ever owned. The noise cancellation is incredible.",
					Date:     base.AddDate(0, 0, 12),
				},
				{
					ID:       "r2",
					UserID:   "u57",
					UserName: "James K.",
					Rating:   4,
					Comment:  "Great sound quality, though they feel a bit heavy after long sessions.",
					Date:     base.AddDate(0, 0, 20),
				},
			},
			CreatedAt: base,
		},
		{
			ID:          "2",
			Name:        "Slim Fit T-shirt",
			Description: "Classic slim fit t-shirt made from 100% organic cotton. Breathable, soft, and perfect for everyday wear.",
			Price:       2499,
			Rating:      4.2,
			Stock:       120,
			Brand:       "Urban Styles",
			Category:    "Clothing",
			Thumbnail:   "/images/products/tshirt-thumb.jpg",
			Images:      []string{"/images/products/tshirt-1.jpg"},
			CreatedAt:   base.AddDate(0, 0, 3),
		},
		{
			ID:              "3",
			Name:            "Smart Fitness Watch",
			Description:     "Track your workouts, heart rate, and sleep with this advanced fitness watch. Water resistant to 50 meters with a 7-day battery.",
			Price:           19999,
			DiscountPercent: 15,
			Rating:          4.7,
			Stock:           35,
			Brand:           "TechFit",
			Category:        "Electronics",
			Thumbnail:       "/images/products/watch-thumb.jpg",
			Images: []string{
				"/images/products/watch-1.jpg",
				"/images/products/watch-2.jpg",
			},
			Features: []string{
				"24/7 heart rate monitoring",
				"Built-in GPS",
				"50m water resistance",
				"7-day battery life",
			},
			Specifications: map[string]string{
				"Display":          "1.4\" AMOLED",
				"Battery Life":     "7 days",
				"Water Resistance": "50m",
			},
			CreatedAt: base.AddDate(0, 0, 6),
		},
		{
			ID:          "4",
			Name:        "Leather Crossbody Bag",
			Description: "Handcrafted genuine leather crossbody bag with adjustable strap and multiple compartments. Timeless style meets everyday function.",
			Price:       8999,
			Rating:      4.4,
			Stock:       28,
			Brand:       "LuxLeather",
			Category:    "Accessories",
			Thumbnail:   "/images/products/bag-thumb.jpg",
			Images:      []string{"/images/products/bag-1.jpg"},
			CreatedAt:   base.AddDate(0, 0, 9),
		},
		{
			ID:              "5",
			Name:            "Professional DSLR Camera",
			Description:     "Capture stunning photos and 4K video with this professional-grade DSLR. Full-frame sensor, fast autofocus, and weather-sealed body.",
			Price:           149999,
			DiscountPercent: 8,
			Rating:          4.9,
			Stock:           12,
			Brand:           "FotoMaster",
			Category:        "Electronics",
			Thumbnail:       "/images/products/camera-thumb.jpg",
			Images: []string{
				"/images/products/camera-1.jpg",
				"/images/products/camera-2.jpg",
			},
			CreatedAt: base.AddDate(0, 0, 12),
		},
		{
			ID:          "6",
			Name:        "Minimalist Desk Lamp",
			Description: "Adjustable LED desk lamp with touch controls, three color temperatures, and a built-in USB charging port.",
			Price:       5999,
			Rating:      4.3,
			Stock:       50,
			Brand:       "HomeLight",
			Category:    "Home & Office",
			Thumbnail:   "/images/products/lamp-thumb.jpg",
			Images:      []string{"/images/products/lamp-1.jpg"},
			CreatedAt:   base.AddDate(0, 0, 15),
		},
		{
			ID:          "7",
			Name:        "Stainless Steel Water Bottle",
			Description: "Double-walled vacuum insulated bottle that keeps drinks cold for 24 hours or hot for 12. BPA-free and leak-proof.",
			Price:       2999,
			Rating:      4.6,
			Stock:       100,
			Brand:       "HydroLife",
			Category:    "Kitchen & Dining",
			Thumbnail:   "/images/products/bottle-thumb.jpg",
			Images:      []string{"/images/products/bottle-1.jpg"},
			CreatedAt:   base.AddDate(0, 0, 18),
		},
		{
			ID:              "8",
			Name:            "Organic Skincare Set",
			Description:     "Complete daily skincare routine with cleanser, toner, serum, and moisturizer. Made from certified organic ingredients.",
			Price:           7999,
			DiscountPercent: 5,
			Rating:          4.8,
			Stock:           30,
			Brand:           "PureGlow",
			Category:        "Beauty & Personal Care",
			Thumbnail:       "/images/products/skincare-thumb.jpg",
			Images:          []string{"/images/products/skincare-1.jpg"},
			CreatedAt:       base.AddDate(0, 0, 21),
		},
	}
	for i := range products {
		products[i].Slug = slug.Generate(products[i].Name)
	}
	return products
}
