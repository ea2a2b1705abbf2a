package implementation

import (
	"context"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/mapper"
	"laundryops-bot/internal/model"
	"laundryops-bot/internal/repository/contract"
	"laundryops-bot/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type FaqDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqDocumentMapper
}

func NewFaqDocumentRepository(db *gorm.DB) contract.FaqDocumentRepository {
	return &FaqDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqDocumentMapper(),
	}
}

func (r *FaqDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.FaqDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqDocument, error) {
	var models []*model.FaqDocument
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FaqDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

// SearchSimilar runs cosine similarity in Postgres. pgvector's `<=>` operator
// is cosine distance, so similarity = 1 - distance. Rows without an embedding
// (not yet backfilled) are excluded.
func (r *FaqDocumentRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredFaqDocument, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.FaqDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("faq_documents").
		Select("faq_documents.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("embedding IS NOT NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredFaqDocument, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredFaqDocument{
			Document:   r.mapper.ToEntity(&res.FaqDocument),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
