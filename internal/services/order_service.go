package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"burrito_orders/internal/models"
	"burrito_orders/pkg/sheets"
)

// SuccessMessage is the confirmation text returned to the client on a
// successful append.
const SuccessMessage = "Order submitted successfully!"

// SheetStore is the injected spreadsheet capability, so the validate-and-
// append core tests without a real network dependency.
type SheetStore interface {
	LoadMetadata(ctx context.Context) error
	AppendRow(ctx context.Context, row models.SheetRow) error
}

type OrderService interface {
	SubmitOrder(ctx context.Context, order *models.OrderSubmission) (string, error)
}

type orderService struct {
	store  SheetStore
	logger *zap.Logger
	now    func() time.Time
}

func NewOrderService(store SheetStore, logger *zap.Logger) OrderService {
	return &orderService{store: store, logger: logger, now: time.Now}
}

func (s *orderService) SubmitOrder(ctx context.Context, order *models.OrderSubmission) (string, error) {
	if s.store == nil {
		return "", &Error{Kind: KindConfig, Err: errors.New("sheet backend is not configured")}
	}

	// Re-validate server-side; client validation is never trusted.
	if err := order.Validate(); err != nil {
		return "", &Error{Kind: KindValidation, Err: err}
	}

	row, err := models.NewSheetRow(order, s.now())
	if err != nil {
		return "", &Error{Kind: KindBackend, Err: err}
	}

	if err := s.store.LoadMetadata(ctx); err != nil {
		s.logger.Error("failed to load spreadsheet metadata", zap.Error(err))
		return "", &Error{Kind: classifyBackend(err), Err: err}
	}

	if err := s.store.AppendRow(ctx, row); err != nil {
		s.logger.Error("failed to append order row", zap.Error(err))
		return "", &Error{Kind: classifyBackend(err), Err: err}
	}

	s.logger.Info("order appended",
		zap.String("name", order.Name),
		zap.Int("items", len(order.BurritoOrders)))
	return SuccessMessage, nil
}

func classifyBackend(err error) ErrorKind {
	var wsErr *sheets.WorksheetError
	switch {
	case errors.As(err, &wsErr):
		return KindSheetNotFound
	case errors.Is(err, sheets.ErrUnauthorized):
		return KindAuth
	default:
		return KindBackend
	}
}
