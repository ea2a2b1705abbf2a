package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops-bot/internal/entity"
)

func TestFaqDocumentMapperRoundTrip(t *testing.T) {
	m := NewFaqDocumentMapper()

	doc := &entity.FaqDocument{
		Content:   "We deliver within 48 hours.",
		Embedding: []float32{0.1, 0.2, 0.3},
	}

	model := m.ToModel(doc)
	require.NotNil(t, model.Embedding)
	assert.Equal(t, doc.Embedding, model.Embedding.Slice())

	back := m.ToEntity(model)
	assert.Equal(t, doc.Content, back.Content)
	assert.Equal(t, doc.Embedding, back.Embedding)
}

func TestFaqDocumentMapperWithoutEmbeddingStoresNull(t *testing.T) {
	m := NewFaqDocumentMapper()

	// A passage whose embedding failed must map to a NULL column, never a
	// zero-dimension vector.
	model := m.ToModel(&entity.FaqDocument{Content: "pending passage"})
	assert.Nil(t, model.Embedding)

	back := m.ToEntity(model)
	assert.Empty(t, back.Embedding)
}
