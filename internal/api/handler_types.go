package api

import (
	"time"

	"github.com/selene-app/selene/internal/services"
)

type Handler struct {
	tracker  *services.TrackerService
	export   *services.ExportService
	lock     *services.LockService
	location *time.Location
	now      func() time.Time
}

func NewHandler(tracker *services.TrackerService, export *services.ExportService, lock *services.LockService, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		tracker:  tracker,
		export:   export,
		lock:     lock,
		location: location,
		now:      time.Now,
	}
}
