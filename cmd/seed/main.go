// seed fills the database with a demo account and sample data for local
// development.
package main

import (
	"log"
	"time"

	"medcontrol/internal/config"
	"medcontrol/internal/database"
	"medcontrol/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var existing int64
	if err := db.Model(&domain.User{}).Where("email = ?", "demo@medcontrol.local").Count(&existing).Error; err != nil {
		log.Fatal(err)
	}
	if existing > 0 {
		log.Println("demo user already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	birthDate := time.Date(1985, time.March, 12, 0, 0, 0, 0, time.Local)
	user := &domain.User{
		Name:         "Demo User",
		Email:        "demo@medcontrol.local",
		BirthDate:    &birthDate,
		PasswordHash: string(hash),
		Phone:        "+77001112233",
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatal(err)
	}

	metformin := &domain.Medication{
		UserID:    user.ID,
		FullName:  "Metformin 850mg film-coated tablets",
		ShortName: "Metformin",
		Dosage:    "850mg",
		Form:      "tablet",
	}
	lisinopril := &domain.Medication{
		UserID:    user.ID,
		FullName:  "Lisinopril 10mg tablets",
		ShortName: "Lisinopril",
		Dosage:    "10mg",
		Form:      "tablet",
	}
	if err := db.Create(metformin).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(lisinopril).Error; err != nil {
		log.Fatal(err)
	}

	expires := time.Now().AddDate(0, 3, 0)
	qty := 60
	prescription := &domain.Prescription{
		UserID:     user.ID,
		DoctorName: "Dr. A. Serikova",
		DoctorReg:  "KZ-4471",
		IssuedAt:   time.Now().AddDate(0, 0, -7),
		ExpiresAt:  &expires,
		Notes:      "Quarterly check-up renewal",
		Items: []domain.PrescriptionItem{
			{
				MedicationID: &metformin.ID,
				Description:  "Metformin 850mg",
				Directions:   "One tablet twice daily with meals",
				Quantity:     &qty,
			},
		},
	}
	if err := db.Create(prescription).Error; err != nil {
		log.Fatal(err)
	}

	if err := db.Create(&domain.InventoryItem{
		UserID:       user.ID,
		MedicationID: metformin.ID,
		CurrentQty:   42,
		AlertQty:     10,
	}).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.InventoryItem{
		UserID:       user.ID,
		MedicationID: lisinopril.ID,
		CurrentQty:   4,
		AlertQty:     5,
	}).Error; err != nil {
		log.Fatal(err)
	}

	dose := 1.0
	if err := db.Create(&domain.Reminder{
		UserID:       user.ID,
		MedicationID: metformin.ID,
		Times:        []string{"08:00", "20:00"},
		DoseQty:      &dose,
		Instructions: "Take with food",
		Active:       true,
	}).Error; err != nil {
		log.Fatal(err)
	}

	systolic, diastolic, pulse := 128, 84, 72
	glucose := 5.8
	fasting := true
	records := []domain.HealthRecord{
		{
			UserID:     user.ID,
			Type:       domain.HealthPressure,
			Systolic:   &systolic,
			Diastolic:  &diastolic,
			Pulse:      &pulse,
			MeasuredAt: time.Now().Add(-26 * time.Hour),
		},
		{
			UserID:     user.ID,
			Type:       domain.HealthGlucose,
			Glucose:    &glucose,
			Fasting:    &fasting,
			MeasuredAt: time.Now().Add(-2 * time.Hour),
		},
	}
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("seeded demo user %s (password: demo-password)", user.Email)
}
