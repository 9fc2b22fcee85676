package schedule

import (
	"time"

	"github.com/google/uuid"
)

func SetNowFunc(s *Service, now func() time.Time) {
	s.nowFunc = now
}

func SetSeriesIDFunc(s *Service, newID func() uuid.UUID) {
	s.newSeriesID = newID
}
