package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops-bot/internal/entity"
	"laundryops-bot/pkg/rag/retriever"
)

func TestRagServiceRefusesWithoutPassages(t *testing.T) {
	llmFake := &countingLLM{reply: "should never be used"}
	r := retriever.NewRetriever(fakeEmbedder{}, &fakeFaqRepo{}, 3)
	svc := NewRagService(r, llmFake, nopLogger{})

	answer, err := svc.Answer(context.Background(), "do you iron silk sarees?")
	require.NoError(t, err)
	assert.Equal(t, NoKnowledgeAnswer, answer)
	assert.Zero(t, llmFake.calls, "zero retrieved passages must not reach the model")
}

func TestRagServiceAnswersFromPassages(t *testing.T) {
	llmFake := &countingLLM{reply: "We pick up daily between 8 AM and 8 PM."}
	repo := &fakeFaqRepo{results: []*entity.ScoredFaqDocument{
		{Document: &entity.FaqDocument{Content: "Pickups run daily 8 AM to 8 PM."}, Similarity: 0.91},
		{Document: &entity.FaqDocument{Content: "Express delivery adds 30%."}, Similarity: 0.55},
	}}
	r := retriever.NewRetriever(fakeEmbedder{}, repo, 3)
	svc := NewRagService(r, llmFake, nopLogger{})

	answer, err := svc.Answer(context.Background(), "when do you pick up?")
	require.NoError(t, err)
	assert.Equal(t, "We pick up daily between 8 AM and 8 PM.", answer)
	assert.EqualValues(t, 1, llmFake.calls)
}
