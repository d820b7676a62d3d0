package models

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// Seed provisions first-run data: one admin account, and four sample
// products when the catalog is empty.
func Seed(db *gorm.DB) error {
	var admin User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = User{Username: "admin", Email: "admin@example.com", IsAdmin: true}
		if err := admin.SetPassword("admin123"); err != nil {
			return err
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("seeded admin account")
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []Product{
		{Name: "Modern Headset", Description: "High-quality noise-canceling wireless headphones.", Price: 199.99, Category: "Electronics", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=400&q=80"},
		{Name: "Smart Watch", Description: "Stylish smartwatch with health tracking features.", Price: 249.50, Category: "Electronics", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=400&q=80"},
		{Name: "Travel Backpack", Description: "Durable and spacious backpack for all your adventures.", Price: 79.00, Category: "Fashion", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=400&q=80"},
		{Name: "Classic Sneakers", Description: "Comfortable and trendy sneakers for everyday wear.", Price: 120.00, Category: "Fashion", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=400&q=80"},
	}
	if err := db.Create(&samples).Error; err != nil {
		return err
	}
	log.Printf("seeded %d sample products", len(samples))
	return nil
}
