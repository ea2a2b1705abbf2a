package contract

import (
	"context"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/specification"
)

type FaqDocumentRepository interface {
	Create(ctx context.Context, doc *entity.FaqDocument) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqDocument, error)

	// SearchSimilar returns the limit most similar passages to the query
	// embedding, ordered by descending cosine similarity.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredFaqDocument, error)
}
