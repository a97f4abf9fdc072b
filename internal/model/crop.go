package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

type CropType string

const (
	// CropTypeCoffee grows in straight rows on a rectangular plot.
	CropTypeCoffee CropType = "coffee"
	// CropTypeCorn grows under a center pivot on a circular plot.
	CropTypeCorn CropType = "corn"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrUnknownCropType  = errors.New("unknown crop type")
)

// ParseCropType maps a normalized user token to a crop type.
func ParseCropType(token string) (CropType, error) {
	switch CropType(token) {
	case CropTypeCoffee:
		return CropTypeCoffee, nil
	case CropTypeCorn:
		return CropTypeCorn, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCropType, token)
	}
}

// Crop is a registered planting. The set of implementations is closed:
// adding a shape means adding a variant with its own Area and LinearMetric,
// never branching on the concrete type elsewhere.
type Crop interface {
	Name() CropType
	// Area returns the planted area in square meters.
	Area() float64
	// LinearMetric returns the one-dimensional length basis (row length or
	// circumference) that input application scales with.
	LinearMetric() float64
	// Details returns the variant's defining dimensions, for display only.
	Details() map[string]float64
	Input() *InputRecord
	SetInput(InputRecord)
	fmt.Stringer
}

// RowCrop is a rectangular plot planted in rows along its length.
type RowCrop struct {
	length float64
	width  float64
	input  *InputRecord
}

func NewRowCrop(length, width float64) (*RowCrop, error) {
	if length <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: length and width must be positive, got %g x %g", ErrInvalidDimension, length, width)
	}
	return &RowCrop{length: length, width: width}, nil
}

func (c *RowCrop) Name() CropType { return CropTypeCoffee }

func (c *RowCrop) Area() float64 { return c.length * c.width }

func (c *RowCrop) LinearMetric() float64 { return c.length }

func (c *RowCrop) Details() map[string]float64 {
	return map[string]float64{"length": c.length, "width": c.width}
}

func (c *RowCrop) Input() *InputRecord { return c.input }

func (c *RowCrop) SetInput(rec InputRecord) { c.input = &rec }

func (c *RowCrop) String() string { return describe(c) }

// CircularCrop is a circular plot irrigated by a center pivot.
type CircularCrop struct {
	radius float64
	input  *InputRecord
}

func NewCircularCrop(radius float64) (*CircularCrop, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidDimension, radius)
	}
	return &CircularCrop{radius: radius}, nil
}

func (c *CircularCrop) Name() CropType { return CropTypeCorn }

func (c *CircularCrop) Area() float64 { return math.Pi * c.radius * c.radius }

func (c *CircularCrop) LinearMetric() float64 { return 2 * math.Pi * c.radius }

func (c *CircularCrop) Details() map[string]float64 {
	return map[string]float64{"radius": c.radius}
}

func (c *CircularCrop) Input() *InputRecord { return c.input }

func (c *CircularCrop) SetInput(rec InputRecord) { c.input = &rec }

func (c *CircularCrop) String() string { return describe(c) }

func describe(c Crop) string {
	details := c.Details()
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %g m", k, details[k]))
	}

	inputInfo := "input: not calculated"
	if rec := c.Input(); rec != nil {
		inputInfo = "input: " + rec.String()
	}

	return fmt.Sprintf("%s | area: %.2f m2 | (%s) | %s",
		c.Name(), c.Area(), strings.Join(parts, ", "), inputInfo)
}
