package service

import (
	"errors"

	"farmtech/internal/model"
	"farmtech/internal/repository"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// PlotService carries the plot operations so the interactive loop stays free
// of business logic.
type PlotService struct {
	plotRepo *repository.PlotRepository
}

func NewPlotService(plotRepo *repository.PlotRepository) *PlotService {
	return &PlotService{
		plotRepo: plotRepo,
	}
}

func (s *PlotService) AddPlot(crop model.Crop) {
	s.plotRepo.Add(crop)
}

func (s *PlotService) ListPlots() []model.Crop {
	return s.plotRepo.List()
}

func (s *PlotService) GetPlot(index int) (model.Crop, error) {
	crop := s.plotRepo.Get(index)
	if crop == nil {
		return nil, ErrIndexOutOfRange
	}
	return crop, nil
}

func (s *PlotService) UpdatePlot(index int, crop model.Crop) error {
	if !s.plotRepo.Replace(index, crop) {
		return ErrIndexOutOfRange
	}
	return nil
}

func (s *PlotService) DeletePlot(index int) error {
	if !s.plotRepo.Remove(index) {
		return ErrIndexOutOfRange
	}
	return nil
}

func (s *PlotService) PlotCount() int {
	return s.plotRepo.Len()
}

type ApplyInputParams struct {
	Product        string
	Rows           int
	RateMlPerMeter float64
}

// ApplyInput computes the volume needed for the plot at index and attaches
// the resulting record to it, replacing any previous one.
func (s *PlotService) ApplyInput(index int, params ApplyInputParams) (*model.InputRecord, error) {
	crop := s.plotRepo.Get(index)
	if crop == nil {
		return nil, ErrIndexOutOfRange
	}

	volume, err := ComputeVolume(crop.LinearMetric(), params.Rows, params.RateMlPerMeter)
	if err != nil {
		return nil, err
	}

	rec := model.InputRecord{
		Product:      params.Product,
		VolumeLiters: volume,
	}
	crop.SetInput(rec)

	return &rec, nil
}
