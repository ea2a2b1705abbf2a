package mapper

import (
	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/model"

	"github.com/pgvector/pgvector-go"
)

type FaqDocumentMapper struct{}

func NewFaqDocumentMapper() *FaqDocumentMapper {
	return &FaqDocumentMapper{}
}

func (m *FaqDocumentMapper) ToEntity(d *model.FaqDocument) *entity.FaqDocument {
	if d == nil {
		return nil
	}
	var values []float32
	if d.Embedding != nil {
		values = d.Embedding.Slice()
	}
	return &entity.FaqDocument{
		Id:        d.Id,
		Content:   d.Content,
		Embedding: values,
		CreatedAt: d.CreatedAt,
	}
}

func (m *FaqDocumentMapper) ToModel(d *entity.FaqDocument) *model.FaqDocument {
	if d == nil {
		return nil
	}
	// A passage without an embedding maps to NULL, not a zero vector, which
	// Postgres rejects for a dimensioned column.
	var vec *pgvector.Vector
	if len(d.Embedding) > 0 {
		v := pgvector.NewVector(d.Embedding)
		vec = &v
	}
	return &model.FaqDocument{
		Id:        d.Id,
		Content:   d.Content,
		Embedding: vec,
		CreatedAt: d.CreatedAt,
	}
}
