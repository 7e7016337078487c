package repository

import (
	"context"

	"burrito_orders/internal/models"
	"burrito_orders/pkg/sheets"
)

// SheetRepository adapts the sheets client to the service's SheetStore
// capability.
type SheetRepository struct {
	client *sheets.Client
}

func NewSheetRepository(client *sheets.Client) *SheetRepository {
	return &SheetRepository{client: client}
}

func (r *SheetRepository) LoadMetadata(ctx context.Context) error {
	return r.client.Metadata(ctx)
}

func (r *SheetRepository) AppendRow(ctx context.Context, row models.SheetRow) error {
	return r.client.Append(ctx, models.SheetHeader, row.Values())
}
