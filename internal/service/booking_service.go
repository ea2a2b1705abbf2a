package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/pkg/apperror"
	"laundryops-bot/internal/pkg/logger"
	"laundryops-bot/internal/repository/specification"
	"laundryops-bot/internal/repository/unitofwork"
	"laundryops-bot/pkg/booking"
)

// Delivery estimates from order creation.
const (
	standardDeliveryHours = 48
	expressDeliveryHours  = 24
)

const orderCodeAttempts = 5

type IBookingService interface {
	// CompleteBooking persists a confirmed draft: customer upsert, outlet
	// assignment, pricing, and order creation run in one transaction.
	CompleteBooking(ctx context.Context, chatID, fullName string, draft entity.DraftBooking) (*entity.Order, error)

	// LoadCatalog reads per-kg rates from the service catalog.
	LoadCatalog(ctx context.Context) (booking.Catalog, error)

	// LoadServicedAreas returns the lowercased names of serviced areas.
	LoadServicedAreas(ctx context.Context) ([]string, error)
}

type bookingService struct {
	uowFactory unitofwork.RepositoryFactory
	surcharge  float64
	log        logger.ILogger
}

func NewBookingService(uowFactory unitofwork.RepositoryFactory, expressSurcharge float64, log logger.ILogger) IBookingService {
	return &bookingService{
		uowFactory: uowFactory,
		surcharge:  expressSurcharge,
		log:        log,
	}
}

func (s *bookingService) LoadCatalog(ctx context.Context) (booking.Catalog, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	services, err := uow.ServiceTypeRepository().FindAll(ctx)
	if err != nil {
		return booking.Catalog{}, err
	}

	rates := make(map[string]float64, len(services))
	for _, svc := range services {
		rates[svc.ServiceName] = svc.BasePrice
	}
	return booking.Catalog{Rates: rates}, nil
}

func (s *bookingService) LoadServicedAreas(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	areas, err := uow.ServiceAreaRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, strings.ToLower(a.AreaName))
	}
	return names, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, chatID, fullName string, draft entity.DraftBooking) (*entity.Order, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	customer, err := findOrCreateCustomer(ctx, uow, chatID, fullName)
	if err != nil {
		return nil, err
	}

	// Keep the customer record in sync with what the dialogue collected.
	customer.PhoneNumber = draft.Phone
	customer.Address = draft.Address
	customer.TotalOrders++
	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}

	outlet, err := s.assignOutlet(ctx, uow, draft.Address)
	if err != nil {
		return nil, err
	}

	ratePerKg, err := s.ratePerKg(ctx, uow, draft.ServiceChoice)
	if err != nil {
		return nil, err
	}

	total := booking.Round2(ratePerKg * draft.WeightKg)
	var expressFee float64
	hours := standardDeliveryHours
	if draft.DeliveryType == booking.DeliveryExpress {
		expressFee = booking.Round2(total * s.surcharge)
		total = booking.Round2(total + expressFee)
		hours = expressDeliveryHours
	}

	orderNumber, err := s.nextOrderNumber(ctx, uow)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		Id:            uuid.New(),
		OrderNumber:   orderNumber,
		CustomerId:    customer.Id,
		OutletId:      outlet.Id,
		ServiceChoice: draft.ServiceChoice,
		Status:        entity.OrderStatusPending,
		RatePerKg:     ratePerKg,
		TotalWeightKg: draft.WeightKg,
		TotalPrice:    total,
		ExpressFee:    expressFee,
		DeliveryType:  draft.DeliveryType,
		PickupType:    draft.PickupType,
		Address:       draft.Address,
		DeliveryTime:  time.Now().UTC().Add(time.Duration(hours) * time.Hour).Truncate(time.Second),
		CreatedAt:     time.Now(),
		OutletName:    outlet.OutletName,
	}
	if draft.WeightNote != "" {
		note := draft.WeightNote
		order.WeightNote = &note
	}
	if draft.Instructions != "" {
		instructions := draft.Instructions
		order.Instructions = &instructions
	}

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("booking", "order created", map[string]interface{}{
		"order_number": order.OrderNumber,
		"chat_id":      chatID,
		"outlet":       outlet.OutletName,
		"total_price":  order.TotalPrice,
	})
	return order, nil
}

// assignOutlet matches a serviced area name inside the address; orders from
// unmatched addresses go to the first active outlet.
func (s *bookingService) assignOutlet(ctx context.Context, uow unitofwork.UnitOfWork, address string) (*entity.Outlet, error) {
	lowerAddr := strings.ToLower(address)

	areas, err := uow.ServiceAreaRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, area := range areas {
		if area.OutletId == nil || area.AreaName == "" {
			continue
		}
		if strings.Contains(lowerAddr, strings.ToLower(area.AreaName)) {
			outlet, err := uow.OutletRepository().FindOne(ctx, specification.ByID{ID: *area.OutletId})
			if err != nil {
				return nil, err
			}
			if outlet != nil && outlet.IsActive {
				return outlet, nil
			}
		}
	}

	fallback, err := uow.OutletRepository().FindOne(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	if fallback == nil {
		return nil, apperror.ErrNoActiveOutlet
	}
	return fallback, nil
}

func (s *bookingService) ratePerKg(ctx context.Context, uow unitofwork.UnitOfWork, choice string) (float64, error) {
	names := booking.ServiceBundles[choice]
	if len(names) == 0 {
		names = []string{"wash"}
	}

	services, err := uow.ServiceTypeRepository().FindAll(ctx, specification.ByServiceNames{ServiceNames: names})
	if err != nil {
		return 0, err
	}
	if len(services) == 0 {
		return 0, fmt.Errorf("no catalog entry for service choice %q", choice)
	}

	var rate float64
	for _, svc := range services {
		rate += svc.BasePrice
	}
	return rate, nil
}

// nextOrderNumber generates an ORD- code and retries on the unlikely
// collision with an existing order.
func (s *bookingService) nextOrderNumber(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	for i := 0; i < orderCodeAttempts; i++ {
		code := NewOrderNumber()
		exists, err := uow.OrderRepository().ExistsByOrderNumber(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique order number after %d attempts", orderCodeAttempts)
}

// NewOrderNumber returns a fresh ORD-XXXXXXXX code.
func NewOrderNumber() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:8])
}
