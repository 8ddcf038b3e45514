package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salesledger/internal/models"
)

func strPtr(s string) *string { return &s }

func FirstSetup(db *gorm.DB) error {
	// -------------------------
	// 1) Ensure admin user
	// -------------------------
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:          "admin@example.com",
		Name:           "Administrator",
		PasswordHash:   string(hash),
		Status:         models.UserActive,
		Role:           strPtr("Sales Manager"),
		LineOfBusiness: strPtr("Enterprise"),
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	// -------------------------
	// 2) Ensure context entities
	// -------------------------
	region := models.Hierarchy{Name: "EMEA"}
	if err := db.Where("name = ?", region.Name).FirstOrCreate(&region).Error; err != nil {
		return err
	}
	pkg := models.Package{Name: "Starter"}
	if err := db.Where("name = ?", pkg.Name).FirstOrCreate(&pkg).Error; err != nil {
		return err
	}

	// -------------------------
	// 3) Ensure sample business records
	// -------------------------
	prelead := models.Prelead{Name: "Acme prelead", ProjectID: &region.ID, PackageID: &pkg.ID}
	if err := db.Where("name = ?", prelead.Name).FirstOrCreate(&prelead).Error; err != nil {
		return err
	}
	lead := models.Lead{Name: "Acme lead", ProjectID: &region.ID, PackageID: &pkg.ID}
	if err := db.Where("name = ?", lead.Name).FirstOrCreate(&lead).Error; err != nil {
		return err
	}
	opp := models.Opportunity{Name: "Acme opportunity", HierarchyID: &region.ID, PackageID: &pkg.ID}
	if err := db.Where("name = ?", opp.Name).FirstOrCreate(&opp).Error; err != nil {
		return err
	}

	log.Println("✅ Seed data ensured")
	return nil
}
