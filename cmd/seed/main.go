package main

import (
	"errors"
	"log"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"laundryops-bot/internal/config"
	"laundryops-bot/internal/model"
	"laundryops-bot/pkg/database"
	"laundryops-bot/pkg/embedding"
)

var services = []model.ServiceType{
	{ServiceName: "wash", BasePrice: 50},
	{ServiceName: "iron", BasePrice: 30},
	{ServiceName: "dry_clean", BasePrice: 120},
	{ServiceName: "shoe_clean", BasePrice: 150},
}

var outlets = map[string][]string{
	"LaundryOps Kothrud":  {"kothrud", "karve nagar", "erandwane"},
	"LaundryOps Baner":    {"baner", "aundh", "pashan"},
	"LaundryOps Hadapsar": {"hadapsar", "magarpatta", "kharadi"},
}

var faqContents = []string{
	"Pickup hours: we collect laundry every day between 8 AM and 8 PM. Book before 6 PM for same-day pickup.",
	"Standard delivery takes 48 hours from pickup. Express delivery takes 24 hours and adds 30% to the order total.",
	"Rates per kg: wash only ₹50, wash and iron ₹80, dry cleaning ₹120, shoe cleaning ₹150 per pair-equivalent kg.",
	"We currently serve Pune: Kothrud, Karve Nagar, Erandwane, Baner, Aundh, Pashan, Hadapsar, Magarpatta and Kharadi.",
	"Payment is collected on delivery. We accept cash, UPI and all major cards.",
	"Delicate garments: mention silk, wool or embellished items in the special instructions and we hand-wash them.",
	"Lost or damaged items are compensated at up to 10 times the service charge for that item, per our service policy.",
	"To cancel a pickup, reply 'cancel' while booking, or contact support before the rider is assigned.",
	"Minimum order weight is 0.5 kg. Orders above 100 kg need a commercial account, contact support.",
	"You can track any order by sending its code, which looks like ORD-1A2B3C4D.",
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedServices(db)
	seedOutlets(db)
	seedFaqDocuments(db, cfg)

	log.Println("✅ Seed complete")
}

func seedServices(db *gorm.DB) {
	for _, svc := range services {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_price"}),
		}).Create(&svc).Error
		if err != nil {
			log.Fatalf("Error: seeding service %s: %v", svc.ServiceName, err)
		}
	}
	log.Printf("Seeded %d services", len(services))
}

func seedOutlets(db *gorm.DB) {
	for outletName, areas := range outlets {
		outlet := model.Outlet{OutletName: outletName, IsActive: true}

		var existing model.Outlet
		err := db.Where("outlet_name = ?", outletName).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&outlet).Error; err != nil {
				log.Fatalf("Error: seeding outlet %s: %v", outletName, err)
			}
		case err != nil:
			log.Fatalf("Error: looking up outlet %s: %v", outletName, err)
		default:
			outlet = existing
		}

		for _, areaName := range areas {
			area := model.ServiceArea{AreaName: areaName, OutletId: &outlet.Id}
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "area_name"}},
				DoUpdates: clause.AssignmentColumns([]string{"outlet_id"}),
			}).Create(&area).Error
			if err != nil {
				log.Fatalf("Error: seeding area %s: %v", areaName, err)
			}
		}
	}
	log.Printf("Seeded %d outlets", len(outlets))
}

func seedFaqDocuments(db *gorm.DB, cfg *config.Config) {
	var embedder embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "openai" {
		embedder = embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel)
	} else {
		embedder = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	}

	for _, content := range faqContents {
		var count int64
		if err := db.Model(&model.FaqDocument{}).Where("content = ?", content).Count(&count).Error; err != nil {
			log.Fatalf("Error: checking faq document: %v", err)
		}
		if count > 0 {
			continue
		}

		doc := model.FaqDocument{Content: content}
		resp, err := embedder.Generate(content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("Warn: embedding failed, storing without vector: %v", err)
		} else {
			vec := pgvector.NewVector(resp.Embedding.Values)
			doc.Embedding = &vec
		}

		if err := db.Create(&doc).Error; err != nil {
			log.Fatalf("Error: seeding faq document: %v", err)
		}
	}
	log.Printf("Seeded %d faq documents", len(faqContents))
}
