package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type FaqDocument struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string          `gorm:"type:text;not null"`
	// Embedding is nil (NULL) when the passage has not been embedded yet;
	// such rows are invisible to similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (FaqDocument) TableName() string {
	return "faq_documents"
}
