// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
)

// SeedInitialData populates the reference catalog and the default admin
// account. Each block is guarded by a count so restarts do not duplicate rows.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedBrands(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedColors(db); err != nil {
		return err
	}
	if err := seedFeatureItems(db); err != nil {
		return err
	}
	if err := seedSpecifications(db); err != nil {
		return err
	}

	log.Println("Initial data seeding completed")
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@motorinci.com",
	}

	if err := admin.SetPassword("admin123!@#"); err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("Default admin user created successfully")
	return nil
}

func seedBrands(db *gorm.DB) error {
	var count int64
	db.Model(&models.Brand{}).Count(&count)
	if count > 0 {
		return nil
	}

	names := []string{
		"Honda", "Yamaha", "Kawasaki", "Suzuki", "Harley-Davidson",
		"Ducati", "BMW Motorrad", "Triumph", "KTM", "Royal Enfield",
		"Benelli", "Aprilia", "Rahayu 5", "Indo",
	}

	brands := make([]models.Brand, 0, len(names))
	for _, name := range names {
		brands = append(brands, models.Brand{Name: name})
	}

	if err := db.Create(&brands).Error; err != nil {
		return fmt.Errorf("failed to seed brands: %w", err)
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	names := []string{
		"Sport Bike", "Naked Bike", "Cruiser", "Touring", "Adventure",
		"Dual-Sport", "Off-road", "Scooter", "Underbone", "Electric",
	}

	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.Category{Name: name})
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}

func seedColors(db *gorm.DB) error {
	var count int64
	db.Model(&models.Color{}).Count(&count)
	if count > 0 {
		return nil
	}

	colors := []models.Color{
		{Name: "Merah", Hex: "#ff0000"},
		{Name: "Hitam", Hex: "#000000"},
		{Name: "Putih", Hex: "#ffffff"},
		{Name: "Biru", Hex: "#0000ff"},
		{Name: "Kuning", Hex: "#ffff00"},
		{Name: "Abu-abu", Hex: "#808080"},
		{Name: "Oranye", Hex: "#ffa500"},
		{Name: "Hijau", Hex: "#008000"},
	}

	if err := db.Create(&colors).Error; err != nil {
		return fmt.Errorf("failed to seed colors: %w", err)
	}
	return nil
}

func seedFeatureItems(db *gorm.DB) error {
	var count int64
	db.Model(&models.FeatureItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	names := []string{
		"Secure Key Shutter",
		"Power Outlet/USB Charger",
		"Adjustable Windshield",
		"Riding Modes",
		"Traction Control System (TCS)",
		"Quick Shifter",
		"Smart Key System",
		"Alarm",
		"Side Stand Switch",
	}

	features := make([]models.FeatureItem, 0, len(names))
	for _, name := range names {
		features = append(features, models.FeatureItem{Name: name})
	}

	if err := db.Create(&features).Error; err != nil {
		return fmt.Errorf("failed to seed feature items: %w", err)
	}
	return nil
}

func seedSpecifications(db *gorm.DB) error {
	var count int64
	db.Model(&models.SpecificationGroup{}).Count(&count)
	if count > 0 {
		return nil
	}

	groups := []struct {
		Name  string
		Items []string
	}{
		{
			Name: "Mesin",
			Items: []string{
				"Tipe Mesin", "Sistem Pendingin", "Konfigurasi Katup",
				"Jumlah Silinder", "Konfigurasi Silinder", "Diameter x Langkah",
				"Rasio Kompresi", "Daya Maksimum", "Torsi Maksimum",
				"Sistem Bahan Bakar", "Tipe Kopling", "Tipe Transmisi",
				"Jumlah Percepatan", "Sistem Starter", "Kapasitas Oli Mesin",
			},
		},
		{
			Name: "Rangka & Dimensi",
			Items: []string{
				"Tipe Rangka", "Panjang x Lebar x Tinggi", "Berat",
			},
		},
		{
			Name: "Kaki-kaki",
			Items: []string{
				"Suspensi Depan", "Suspensi Belakang", "Rem Depan",
				"Ukuran Piringan Depan", "Tipe Kaliper Depan", "Rem Belakang",
				"Ukuran Piringan Belakang", "Tipe Kaliper Belakang",
				"Sistem Pengereman Tambahan", "Channel ABS",
				"Ukuran Ban Depan", "Ukuran Ban Belakang", "Tipe Ban",
				"Tipe Velg", "Ukuran Velg Depan", "Ukuran Velg Belakang",
			},
		},
		{
			Name: "Kelistrikan",
			Items: []string{
				"Sistem Pengapian", "Tipe Baterai/Aki", "Lampu Depan",
				"Lampu Belakang", "Lampu Sein", "Tipe Panel Meter",
				"Indikator Panel Meter",
			},
		},
		{
			Name: "Kapasitas",
			Items: []string{
				"Tangki Bahan Bakar", "Air Pendingin", "Bagasi", "Bahan Bakar",
			},
		},
	}

	for gi, g := range groups {
		group := models.SpecificationGroup{Name: g.Name, Order: gi}
		if err := db.Create(&group).Error; err != nil {
			return fmt.Errorf("failed to seed specification group %s: %w", g.Name, err)
		}

		items := make([]models.SpecificationItem, 0, len(g.Items))
		for ii, name := range g.Items {
			items = append(items, models.SpecificationItem{
				SpecificationGroupID: group.ID,
				Name:                 name,
				Order:                ii,
			})
		}
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed specification items for %s: %w", g.Name, err)
		}
	}

	return nil
}
