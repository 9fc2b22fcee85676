package clients

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

const (
	maxWeightKg = 500
	maxWaistCm  = 300
)

// Measurement is one body check-in of a client. GoalWeightKg of zero means no weight goal.
type Measurement struct {
	ID             int             `json:"id"`
	ClientID       int             `json:"clientId"`
	MeasuredOn     recurrence.Date `json:"measuredOn"`
	WeightKg       float64         `json:"weightKg"`
	GoalWeightKg   float64         `json:"goalWeightKg"`
	BodyFatPercent *float64        `json:"bodyFatPercent,omitempty"`
	WaistCm        *float64        `json:"waistCm,omitempty"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (m *Measurement) Validate() error {
	m.Notes = strings.TrimSpace(m.Notes)
	if !m.MeasuredOn.Valid() {
		return fmt.Errorf("%w: bad date [%s]", ErrInvalidMeasurement, m.MeasuredOn)
	}
	if m.WeightKg <= 0 || m.WeightKg > maxWeightKg {
		return fmt.Errorf("%w: weight %.1f kg out of range", ErrInvalidMeasurement, m.WeightKg)
	}
	if m.GoalWeightKg < 0 || m.GoalWeightKg > maxWeightKg {
		return fmt.Errorf("%w: goal weight %.1f kg out of range", ErrInvalidMeasurement, m.GoalWeightKg)
	}
	if m.BodyFatPercent != nil && (*m.BodyFatPercent <= 0 || *m.BodyFatPercent >= 100) {
		return fmt.Errorf("%w: body fat %.1f%% out of range", ErrInvalidMeasurement, *m.BodyFatPercent)
	}
	if m.WaistCm != nil && (*m.WaistCm <= 0 || *m.WaistCm > maxWaistCm) {
		return fmt.Errorf("%w: waist %.1f cm out of range", ErrInvalidMeasurement, *m.WaistCm)
	}
	return nil
}

// GoalGap is how many kilos remain to the goal weight; negative when the client is under it.
func (m Measurement) GoalGap() float64 {
	if m.GoalWeightKg == 0 {
		return 0
	}
	return m.WeightKg - m.GoalWeightKg
}
