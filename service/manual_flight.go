package service

import (
	"Skyline/dao"
	"Skyline/models"
	"Skyline/pkg/errs"
	"Skyline/types"
	"context"
	"strings"
)

var _ IManualFlightService = (*ManualFlightService)(nil)

// IManualFlightService 用户手动记录的航班，所有操作都限定在当前用户
type IManualFlightService interface {
	List(ctx context.Context, userID uint) ([]models.ManualFlight, error)
	Get(ctx context.Context, userID uint, id uint64) (*models.ManualFlight, error)
	Create(ctx context.Context, userID uint, req *types.ManualFlightRequest) (*models.ManualFlight, error)
	Update(ctx context.Context, userID uint, id uint64, req *types.ManualFlightRequest) error
	Delete(ctx context.Context, userID uint, id uint64) error
}

type ManualFlightService struct {
	ManualFlightDAO *dao.ManualFlightDAO
}

func (s *ManualFlightService) List(ctx context.Context, userID uint) ([]models.ManualFlight, error) {
	if userID == 0 {
		return nil, errs.ErrAuthRequired
	}
	return s.ManualFlightDAO.ListByUser(ctx, userID, dao.ManualFlightListLimit)
}

func (s *ManualFlightService) Get(ctx context.Context, userID uint, id uint64) (*models.ManualFlight, error) {
	if userID == 0 {
		return nil, errs.ErrAuthRequired
	}
	mf, err := s.ManualFlightDAO.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if mf == nil {
		return nil, errs.NotFound("flight")
	}
	return mf, nil
}

func (s *ManualFlightService) Create(ctx context.Context, userID uint, req *types.ManualFlightRequest) (*models.ManualFlight, error) {
	if userID == 0 {
		return nil, errs.ErrAuthRequired
	}
	mf, err := toManualFlight(req)
	if err != nil {
		return nil, err
	}
	mf.UserID = userID
	if err := s.ManualFlightDAO.Create(ctx, mf); err != nil {
		return nil, err
	}
	return mf, nil
}

func (s *ManualFlightService) Update(ctx context.Context, userID uint, id uint64, req *types.ManualFlightRequest) error {
	if userID == 0 {
		return errs.ErrAuthRequired
	}
	mf, err := toManualFlight(req)
	if err != nil {
		return err
	}
	ok, err := s.ManualFlightDAO.UpdateForUser(ctx, id, userID, mf)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NotFound("flight")
	}
	return nil
}

func (s *ManualFlightService) Delete(ctx context.Context, userID uint, id uint64) error {
	if userID == 0 {
		return errs.ErrAuthRequired
	}
	ok, err := s.ManualFlightDAO.DeleteForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NotFound("flight")
	}
	return nil
}

func toManualFlight(req *types.ManualFlightRequest) (*models.ManualFlight, error) {
	if req.ScheduledDeparture != nil && req.ScheduledArrival != nil &&
		req.ScheduledArrival.Before(*req.ScheduledDeparture) {
		return nil, errs.Validation("arrival is before departure")
	}
	return &models.ManualFlight{
		FlightID:   strings.TrimSpace(req.FlightID),
		Airline:    strings.TrimSpace(req.Airline),
		Departure:  req.ScheduledDeparture,
		Arrival:    req.ScheduledArrival,
		DepAirport: strings.ToUpper(strings.TrimSpace(req.DepartureAirport)),
		ArrAirport: strings.ToUpper(strings.TrimSpace(req.ArrivalAirport)),
		Note:       req.Note,
	}, nil
}
