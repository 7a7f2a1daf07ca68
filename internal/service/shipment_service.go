package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/nimbatransit/transit-tracker/internal/dto"
	"github.com/nimbatransit/transit-tracker/internal/identifier"
	"github.com/nimbatransit/transit-tracker/internal/model"
	"github.com/nimbatransit/transit-tracker/internal/repository"
)

type ShipmentService struct {
	shipmentRepo *repository.ShipmentRepository
	expenseRepo  *repository.ExpenseRepository
	customsSvc   *CustomsService
}

func NewShipmentService(shipmentRepo *repository.ShipmentRepository, expenseRepo *repository.ExpenseRepository, customsSvc *CustomsService) *ShipmentService {
	return &ShipmentService{shipmentRepo: shipmentRepo, expenseRepo: expenseRepo, customsSvc: customsSvc}
}

// validationErr marks a request-level problem the handler should map
// to a 400 with a field reference.
type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// AsValidationError converts a service error into a dto.ValidationError
// when it is one.
func AsValidationError(err error) (dto.ValidationError, bool) {
	var ve *validationErr
	if errors.As(err, &ve) {
		return dto.ValidationError{Field: ve.field, Message: ve.message}, true
	}
	return dto.ValidationError{}, false
}

// Create validates the dossier identifiers, generates a tracking
// number, estimates customs duties when a FOB value is declared and
// persists the shipment. The tracking number's uniqueness is enforced
// by the database index; a collision is retried once with a fresh
// number.
func (s *ShipmentService) Create(ctx context.Context, req *dto.CreateShipmentRequest) (*model.Shipment, error) {
	line := req.ShippingLine
	if line != "" {
		line = identifier.NormalizeShippingLine(line)
	} else if detected, ok := identifier.DetectShippingLine(req.BLNumber); ok {
		line = detected
	}

	blResult := identifier.ValidateBLNumber(req.BLNumber, line)
	if !blResult.Valid {
		return nil, &validationErr{field: "bl_number", message: blResult.Error}
	}

	containerNumber := ""
	if req.ContainerNumber != "" {
		containerResult := identifier.ValidateContainerNumber(req.ContainerNumber)
		if !containerResult.Valid {
			return nil, &validationErr{field: "container_number", message: containerResult.Error}
		}
		containerNumber = containerResult.Normalized
	}

	shipment := &model.Shipment{
		BLNumber:        blResult.Normalized,
		ContainerNumber: containerNumber,
		ClientName:      req.ClientName,
		ShippingLine:    line,
		Regime:          req.Regime,
		FOBValue:        req.FOBValue,
		FreightCost:     req.FreightCost,
		InsuranceCost:   req.InsuranceCost,
		Status:          "EN_TRANSIT",
	}

	if req.FOBValue > 0 {
		quote, err := s.customsSvc.Quote(ctx, req.FOBValue, req.FreightCost, req.InsuranceCost)
		if err != nil {
			log.Warn().Err(err).Msg("duty estimation skipped: no rate schedule available")
		} else {
			estimated := quote.Breakdown.TotalDuties.Round(0).IntPart()
			shipment.EstimatedDuties = &estimated
		}
	}

	for attempt := 0; ; attempt++ {
		tracking, err := identifier.GenerateTrackingNumber(req.Regime)
		if err != nil {
			return nil, &validationErr{field: "regime", message: err.Error()}
		}
		shipment.TrackingNumber = tracking

		err = s.shipmentRepo.Insert(ctx, shipment)
		if err == nil {
			return shipment, nil
		}

		var pgErr *pgconn.PgError
		if attempt == 0 && errors.As(err, &pgErr) && pgErr.Code == "23505" {
			log.Warn().Str("tracking_number", tracking).Msg("tracking number collision, regenerating")
			continue
		}
		return nil, fmt.Errorf("insert shipment: %w", err)
	}
}

func (s *ShipmentService) Get(ctx context.Context, id string) (*model.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByShipment(ctx, id)
	if err != nil {
		return nil, err
	}
	shipment.Expenses = expenses

	return shipment, nil
}

// Track resolves a tracking number to its shipment. The number is
// validated before touching storage so malformed or corrupted numbers
// fail fast with the precise reason.
func (s *ShipmentService) Track(ctx context.Context, trackingNumber string) (*model.Shipment, error) {
	result := identifier.ValidateTrackingNumber(trackingNumber)
	if !result.Valid {
		return nil, &validationErr{field: "tracking_number", message: result.Error}
	}

	shipment, err := s.shipmentRepo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, err
	}
	shipment.Expenses = expenses

	return shipment, nil
}

func (s *ShipmentService) List(ctx context.Context, limit, offset int) ([]model.Shipment, int, error) {
	return s.shipmentRepo.List(ctx, limit, offset)
}

// Estimate re-runs the duty calculation for a stored shipment.
func (s *ShipmentService) Estimate(ctx context.Context, id string) (*Quote, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.customsSvc.Quote(ctx, shipment.FOBValue, shipment.FreightCost, shipment.InsuranceCost)
}
