package retriever

import (
	"context"
	"fmt"

	"laundryops-bot/internal/repository/contract"
	"laundryops-bot/pkg/embedding"
)

// DefaultTopK is how many passages ground an FAQ answer.
const DefaultTopK = 3

// Passage is one retrieved grounding snippet.
type Passage struct {
	Content    string
	Similarity float64
}

// Retriever embeds a query and pulls the nearest FAQ passages from pgvector.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	faqRepo  contract.FaqDocumentRepository
	topK     int
}

func NewRetriever(embedder embedding.EmbeddingProvider, faqRepo contract.FaqDocumentRepository, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{
		embedder: embedder,
		faqRepo:  faqRepo,
		topK:     topK,
	}
}

// Retrieve returns the topK most similar passages to the query. A query that
// matches nothing returns an empty slice, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]Passage, error) {
	resp, err := r.embedder.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.faqRepo.SearchSimilar(ctx, resp.Embedding.Values, r.topK)
	if err != nil {
		return nil, fmt.Errorf("search faq documents: %w", err)
	}

	passages := make([]Passage, 0, len(scored))
	for _, s := range scored {
		passages = append(passages, Passage{
			Content:    s.Document.Content,
			Similarity: s.Similarity,
		})
	}
	return passages, nil
}
