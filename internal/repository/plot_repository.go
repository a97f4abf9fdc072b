package repository

import (
	"farmtech/internal/model"
)

// PlotRepository is the in-memory registry of plots. Insertion order is the
// index, and the index is the only identifier: removing a plot shifts every
// later index down by one.
type PlotRepository struct {
	plots []model.Crop
}

func NewPlotRepository() *PlotRepository {
	return &PlotRepository{}
}

// Add appends a crop to the registry. It always succeeds.
func (r *PlotRepository) Add(crop model.Crop) {
	r.plots = append(r.plots, crop)
}

// List returns a snapshot of the registry in insertion order. An empty slice
// means no plots are registered.
func (r *PlotRepository) List() []model.Crop {
	out := make([]model.Crop, len(r.plots))
	copy(out, r.plots)
	return out
}

// Get returns the crop at index, or nil when the index is out of range.
func (r *PlotRepository) Get(index int) model.Crop {
	if index < 0 || index >= len(r.plots) {
		return nil
	}
	return r.plots[index]
}

// Remove deletes the crop at index, shifting later entries down. It reports
// false when the index is out of range.
func (r *PlotRepository) Remove(index int) bool {
	if index < 0 || index >= len(r.plots) {
		return false
	}
	r.plots = append(r.plots[:index], r.plots[index+1:]...)
	return true
}

// Replace swaps the whole record at index for a new crop. It reports false
// when the index is out of range.
func (r *PlotRepository) Replace(index int, crop model.Crop) bool {
	if index < 0 || index >= len(r.plots) {
		return false
	}
	r.plots[index] = crop
	return true
}

func (r *PlotRepository) Len() int {
	return len(r.plots)
}
