package entity

import (
	"time"

	"github.com/google/uuid"
)

// FaqDocument is one retrievable policy/pricing passage. Embeddings are
// written by an external backfill job; this service only reads them.
type FaqDocument struct {
	Id        uuid.UUID
	Content   string
	Embedding []float32
	CreatedAt time.Time
}

// ScoredFaqDocument pairs a passage with its cosine similarity to a query.
type ScoredFaqDocument struct {
	Document   *FaqDocument
	Similarity float64
}
