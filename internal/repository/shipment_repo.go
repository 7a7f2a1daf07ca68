package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nimbatransit/transit-tracker/internal/model"
)

type ShipmentRepository struct {
	pool *pgxpool.Pool
}

func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepository {
	return &ShipmentRepository{pool: pool}
}

func (r *ShipmentRepository) Insert(ctx context.Context, s *model.Shipment) error {
	var container *string
	if s.ContainerNumber != "" {
		container = &s.ContainerNumber
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO shipments (tracking_number, bl_number, container_number, client_name, shipping_line, regime, fob_value, freight_cost, insurance_cost, estimated_duties, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		s.TrackingNumber, s.BLNumber, container, s.ClientName, s.ShippingLine, s.Regime,
		s.FOBValue, s.FreightCost, s.InsuranceCost, s.EstimatedDuties, s.Status,
	).Scan(&s.ID, &s.CreatedAt)
}

const shipmentColumns = `id, tracking_number, bl_number, COALESCE(container_number, ''), client_name, COALESCE(shipping_line, ''), regime, fob_value, freight_cost, insurance_cost, estimated_duties, status, created_at`

func (r *ShipmentRepository) GetByID(ctx context.Context, id string) (*model.Shipment, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *ShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Shipment, error) {
	return r.getBy(ctx, "tracking_number = $1", trackingNumber)
}

func (r *ShipmentRepository) getBy(ctx context.Context, where string, arg any) (*model.Shipment, error) {
	var s model.Shipment
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM shipments WHERE %s", shipmentColumns, where), arg,
	).Scan(
		&s.ID, &s.TrackingNumber, &s.BLNumber, &s.ContainerNumber, &s.ClientName,
		&s.ShippingLine, &s.Regime, &s.FOBValue, &s.FreightCost, &s.InsuranceCost,
		&s.EstimatedDuties, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

func (r *ShipmentRepository) List(ctx context.Context, limit, offset int) ([]model.Shipment, int, error) {
	var totalItems int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM shipments").Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("count shipments: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM shipments ORDER BY created_at DESC, id LIMIT $1 OFFSET $2", shipmentColumns),
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []model.Shipment
	for rows.Next() {
		var s model.Shipment
		err := rows.Scan(
			&s.ID, &s.TrackingNumber, &s.BLNumber, &s.ContainerNumber, &s.ClientName,
			&s.ShippingLine, &s.Regime, &s.FOBValue, &s.FreightCost, &s.InsuranceCost,
			&s.EstimatedDuties, &s.Status, &s.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan shipment row: %w", err)
		}
		shipments = append(shipments, s)
	}

	return shipments, totalItems, nil
}
