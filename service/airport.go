package service

import (
	"Skyline/dao"
	"Skyline/types"
	"context"
)

var _ IAirportService = (*AirportService)(nil)

type IAirportService interface {
	Autocomplete(ctx context.Context, query string) ([]types.AutocompleteItem, error)
}

type AirportService struct {
	AirportDAO *dao.AirportDAO
}

func (s *AirportService) Autocomplete(ctx context.Context, query string) ([]types.AutocompleteItem, error) {
	airports, err := s.AirportDAO.Autocomplete(ctx, query, dao.AutocompleteLimit)
	if err != nil {
		return nil, err
	}
	items := make([]types.AutocompleteItem, 0, len(airports))
	for _, a := range airports {
		items = append(items, types.AutocompleteItem{Code: a.AirportID, Name: a.Name})
	}
	return items, nil
}
