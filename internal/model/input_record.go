package model

import "fmt"

// InputRecord is the most recently computed product application for a plot.
// It is a value: replacing a plot's record swaps the whole thing.
type InputRecord struct {
	Product      string
	VolumeLiters float64
}

func (r InputRecord) String() string {
	return fmt.Sprintf("%s - %.2f L", r.Product, r.VolumeLiters)
}
