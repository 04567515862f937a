package production

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the planting date format the prompt asks for (AAAA-MM-DD).
const DateLayout = "2006-01-02"

// RawInput is what the operator typed, one field per prompt.
type RawInput struct {
	PropertyID   string
	Crop         string
	Area         string
	PlantingDate string
	Season       string
}

// Input is a production ready to be inserted.
type Input struct {
	PropertyID   int64
	Crop         string
	AreaHa       float64
	PlantingDate time.Time
	Season       string
}

// ParseInput coerces the raw fields. Any failure wraps ErrInvalidInput and means
// nothing may be written.
func ParseInput(raw RawInput) (Input, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw.PropertyID), 10, 64)
	if err != nil {
		return Input{}, fmt.Errorf("%w: ID do imóvel %q não é um número inteiro", ErrInvalidInput, raw.PropertyID)
	}

	area, err := parseArea(raw.Area)
	if err != nil {
		return Input{}, fmt.Errorf("%w: área %q não é um número decimal", ErrInvalidInput, raw.Area)
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(raw.PlantingDate))
	if err != nil {
		return Input{}, fmt.Errorf("%w: data %q fora do formato AAAA-MM-DD", ErrInvalidInput, raw.PlantingDate)
	}

	return Input{
		PropertyID:   id,
		Crop:         strings.TrimSpace(raw.Crop),
		AreaHa:       area,
		PlantingDate: date,
		Season:       strings.TrimSpace(raw.Season),
	}, nil
}

// parseArea accepts both "50.5" and "50,5".
func parseArea(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
