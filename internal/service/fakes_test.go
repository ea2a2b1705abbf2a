package service

import (
	"context"
	"sync"
	"sync/atomic"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/pkg/apperror"
	"laundryops-bot/internal/repository/contract"
	"laundryops-bot/internal/repository/specification"
	"laundryops-bot/internal/repository/unitofwork"
	"laundryops-bot/pkg/booking"
	"laundryops-bot/pkg/embedding"
	"laundryops-bot/pkg/llm"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var testCatalog = booking.Catalog{Rates: map[string]float64{
	"wash":       50,
	"iron":       30,
	"dry_clean":  120,
	"shoe_clean": 150,
}}

// fakeBookingService records completions and serves a fixed catalog.
type fakeBookingService struct {
	completions  int32
	completeErr  error
	createdOrder *entity.Order
}

func (f *fakeBookingService) CompleteBooking(ctx context.Context, chatID, fullName string, draft entity.DraftBooking) (*entity.Order, error) {
	atomic.AddInt32(&f.completions, 1)
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	order := f.createdOrder
	if order == nil {
		order = &entity.Order{
			OrderNumber:   "ORD-1A2B3C4D",
			ServiceChoice: draft.ServiceChoice,
			Status:        entity.OrderStatusPending,
			TotalWeightKg: draft.WeightKg,
			TotalPrice:    100,
			DeliveryType:  draft.DeliveryType,
			OutletName:    "Laundry Central",
		}
	}
	return order, nil
}

func (f *fakeBookingService) LoadCatalog(ctx context.Context) (booking.Catalog, error) {
	return testCatalog, nil
}

func (f *fakeBookingService) LoadServicedAreas(ctx context.Context) ([]string, error) {
	return []string{"kothrud", "baner"}, nil
}

// fakeTrackingService serves canned orders.
type fakeTrackingService struct {
	byCode    map[string]*entity.Order
	latest    *entity.Order
	codeErr   error
	latestErr error
}

func (f *fakeTrackingService) FindOrderByCode(ctx context.Context, code string) (*entity.Order, error) {
	if f.codeErr != nil {
		return nil, f.codeErr
	}
	if order, ok := f.byCode[code]; ok {
		return order, nil
	}
	return nil, apperror.ErrOrderNotFound
}

func (f *fakeTrackingService) FindLatestOrderByChatID(ctx context.Context, chatID string) (*entity.Order, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	if f.latest == nil {
		return nil, apperror.ErrNoLinkedOrder
	}
	return f.latest, nil
}

func (f *fakeTrackingService) FindOrCreateCustomer(ctx context.Context, chatID, fullName string) (*entity.Customer, error) {
	return &entity.Customer{ChatID: chatID, FullName: fullName}, nil
}

// fakeRagService records questions.
type fakeRagService struct {
	calls  int32
	answer string
	err    error
}

func (f *fakeRagService) Answer(ctx context.Context, question string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.answer, f.err
}

// fakeOrderQueryService records questions.
type fakeOrderQueryService struct {
	calls  int32
	answer string
	err    error
}

func (f *fakeOrderQueryService) Answer(ctx context.Context, chatID, message string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.answer, f.err
}

// countingLLM counts model calls and serves a fixed reply.
type countingLLM struct {
	calls int32
	reply string
	err   error
}

func (f *countingLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.reply, f.err
}

func (f *countingLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.reply, f.err
}

// fakeEmbedder serves a fixed vector.
type fakeEmbedder struct{}

func (fakeEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

// fakeCustomerRepo keeps customers keyed by chat identity. Unimplemented
// contract methods panic via the embedded nil interface.
type fakeCustomerRepo struct {
	contract.CustomerRepository
	mu      sync.Mutex
	byChat  map[string]*entity.Customer
	creates int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byChat: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if byChat, ok := s.(specification.ByChatID); ok {
			if c, ok := r.byChat[byChat.ChatID]; ok {
				cp := *c
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	cp := *customer
	r.byChat[customer.ChatID] = &cp
	return nil
}

// fakeUnitOfWork exposes only the customer repository; the other getters
// panic via the embedded nil interface if reached.
type fakeUnitOfWork struct {
	unitofwork.UnitOfWork
	customers contract.CustomerRepository
}

func (u *fakeUnitOfWork) CustomerRepository() contract.CustomerRepository { return u.customers }

type fakeUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// fakeFaqRepo serves canned scored documents.
type fakeFaqRepo struct {
	results []*entity.ScoredFaqDocument
}

func (f *fakeFaqRepo) Create(ctx context.Context, doc *entity.FaqDocument) error { return nil }

func (f *fakeFaqRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqDocument, error) {
	return nil, nil
}

func (f *fakeFaqRepo) SearchSimilar(ctx context.Context, emb []float32, limit int) ([]*entity.ScoredFaqDocument, error) {
	return f.results, nil
}
