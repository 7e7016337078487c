package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"burrito_orders/internal/models"
	"burrito_orders/pkg/sheets"
)

type sheetStoreMock struct {
	LoadMetadataFunc func(ctx context.Context) error
	AppendRowFunc    func(ctx context.Context, row models.SheetRow) error
	metadataCalls    int
	appendCalls      int
	appended         []models.SheetRow
}

func (m *sheetStoreMock) LoadMetadata(ctx context.Context) error {
	m.metadataCalls++
	if m.LoadMetadataFunc != nil {
		return m.LoadMetadataFunc(ctx)
	}
	return nil
}

func (m *sheetStoreMock) AppendRow(ctx context.Context, row models.SheetRow) error {
	m.appendCalls++
	m.appended = append(m.appended, row)
	if m.AppendRowFunc != nil {
		return m.AppendRowFunc(ctx, row)
	}
	return nil
}

func validOrder() *models.OrderSubmission {
	return &models.OrderSubmission{
		Name:          "Ana",
		PhoneNumber:   "+15551234567",
		BurritoOrders: map[string]int{"Bean & Cheese Burrito": 2},
	}
}

func TestSubmitOrderAppendsOneRow(t *testing.T) {
	store := &sheetStoreMock{}
	svc := NewOrderService(store, zap.NewNop())

	msg, err := svc.SubmitOrder(context.Background(), validOrder())
	require.NoError(t, err)

	assert.Equal(t, SuccessMessage, msg)
	assert.Equal(t, 1, store.metadataCalls)
	require.Len(t, store.appended, 1)

	row := store.appended[0]
	assert.Equal(t, "Ana", row.Name)
	assert.Equal(t, "+15551234567", row.PhoneNumber)
	assert.Equal(t, `{"Bean & Cheese Burrito":2}`, row.BurritoOrders)
	assert.NotEmpty(t, row.Timestamp)
}

func TestSubmitOrderValidationFailureSkipsBackend(t *testing.T) {
	store := &sheetStoreMock{}
	svc := NewOrderService(store, zap.NewNop())

	order := validOrder()
	order.PhoneNumber = "5551234567"

	_, err := svc.SubmitOrder(context.Background(), order)
	require.Error(t, err)

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, 0, store.metadataCalls, "no outbound call on validation failure")
	assert.Equal(t, 0, store.appendCalls)

	var fieldErr *models.FieldError
	assert.ErrorAs(t, err, &fieldErr)
}

func TestSubmitOrderWithoutStoreIsConfigError(t *testing.T) {
	svc := NewOrderService(nil, zap.NewNop())

	_, err := svc.SubmitOrder(context.Background(), validOrder())
	require.Error(t, err)
	assert.Equal(t, KindConfig, KindOf(err))
}

func TestSubmitOrderClassifiesBackendFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantKind ErrorKind
	}{
		{"worksheet missing", &sheets.WorksheetError{SpreadsheetID: "abc", Available: []string{"Sheet2"}}, KindSheetNotFound},
		{"unauthorized", sheets.ErrUnauthorized, KindAuth},
		{"transient", errors.New("connection reset"), KindBackend},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &sheetStoreMock{
				LoadMetadataFunc: func(ctx context.Context) error { return tc.err },
			}
			svc := NewOrderService(store, zap.NewNop())

			_, err := svc.SubmitOrder(context.Background(), validOrder())
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, KindOf(err))
			assert.Equal(t, 0, store.appendCalls, "append skipped after metadata failure")
		})
	}
}

func TestSubmitOrderAppendFailure(t *testing.T) {
	store := &sheetStoreMock{
		AppendRowFunc: func(ctx context.Context, row models.SheetRow) error {
			return errors.New("backend unavailable")
		},
	}
	svc := NewOrderService(store, zap.NewNop())

	_, err := svc.SubmitOrder(context.Background(), validOrder())
	require.Error(t, err)
	assert.Equal(t, KindBackend, KindOf(err))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("nope")))
}
