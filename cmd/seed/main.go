package main

import (
	"github.com/coworkly/coworking-booking/config"
	"github.com/coworkly/coworking-booking/internal/models"
	"github.com/coworkly/coworking-booking/pkg/database"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with the facility catalog, an admin account, a sample
// customer and a few workspaces. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	db := database.NewPostgresDB(cfg.DSN())

	facilityNames := []string{
		"WiFi", "Air Conditioning", "Printer", "Coffee Machine",
		"Meeting Room", "Parking", "Security", "Receptionist",
	}
	facilities := make(map[string]models.Facility, len(facilityNames))
	for _, name := range facilityNames {
		var f models.Facility
		if err := db.Where(models.Facility{Name: name}).FirstOrCreate(&f).Error; err != nil {
			logrus.Fatalf("failed to seed facility %q: %v", name, err)
		}
		facilities[name] = f
	}

	admin := seedUser(db, "Admin", "admin@coworking.com", "admin123", models.RoleAdmin)
	seedUser(db, "John Doe", "john@example.com", "password123", models.RoleCustomer)

	workspaces := []models.Workspace{
		{
			AdminID:      admin.ID,
			Name:         "Creative Hub Jakarta",
			Address:      "Jl. Sudirman No. 123, Jakarta Selatan",
			Description:  "Modern coworking space with a view over the city.",
			PricePerHour: 50000,
			Capacity:     20,
			Facilities:   pick(facilities, "WiFi", "Air Conditioning", "Printer", "Coffee Machine", "Parking"),
		},
		{
			AdminID:      admin.ID,
			Name:         "Tech Space Bandung",
			Address:      "Jl. Dago Raya No. 456, Bandung",
			Description:  "Coworking space for tech startups with meeting rooms and high-speed internet.",
			PricePerHour: 45000,
			Capacity:     15,
			Facilities:   pick(facilities, "WiFi", "Air Conditioning", "Printer", "Meeting Room", "Parking"),
		},
		{
			AdminID:      admin.ID,
			Name:         "Business Center Surabaya",
			Address:      "Jl. Tunjungan No. 789, Surabaya",
			Description:  "Professional coworking space in the central business district.",
			PricePerHour: 60000,
			Capacity:     25,
			Facilities:   pick(facilities, "WiFi", "Air Conditioning", "Printer", "Coffee Machine", "Meeting Room", "Parking"),
		},
	}
	for i := range workspaces {
		ws := &workspaces[i]
		if err := db.Where(models.Workspace{Name: ws.Name, AdminID: admin.ID}).FirstOrCreate(ws).Error; err != nil {
			logrus.Fatalf("failed to seed workspace %q: %v", ws.Name, err)
		}
	}

	logrus.Infof("seeded %d facilities and %d workspaces", len(facilityNames), len(workspaces))
	logrus.Info("admin: admin@coworking.com / admin123")
	logrus.Info("customer: john@example.com / password123")
}

func seedUser(db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash password for %s: %v", email, err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Where(models.User{Email: email}).FirstOrCreate(user).Error; err != nil {
		logrus.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func pick(facilities map[string]models.Facility, names ...string) []models.Facility {
	out := make([]models.Facility, 0, len(names))
	for _, n := range names {
		out = append(out, facilities[n])
	}
	return out
}
