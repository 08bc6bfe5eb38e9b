package ui

import (
	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/pkg/msg"
)

// DisplayState is the shell's view of what is currently on screen. It is
// owned by the UI context and mutated only there. A failed fetch never blanks
// it: the previous snapshot stays rendered and only the status line changes.
type DisplayState struct {
	Snapshot    *model.WeatherSnapshot
	Units       entity.UnitSystem
	Status      string
	pendingCity string
}

// NewDisplayState creates an empty state with the given unit system.
func NewDisplayState(units entity.UnitSystem) *DisplayState {
	return &DisplayState{
		Units:  units,
		Status: msg.GetMessage("status.ready"),
	}
}

// City returns the currently displayed city name, or "".
func (s *DisplayState) City() string {
	if s.Snapshot == nil {
		return ""
	}
	return s.Snapshot.Current.City
}

// ApplySnapshot atomically replaces the displayed data. Current conditions
// and forecast always change together; partial updates are impossible because
// the snapshot is a single value.
func (s *DisplayState) ApplySnapshot(snapshot *model.WeatherSnapshot, status string) {
	s.Snapshot = snapshot
	s.Units = snapshot.Units
	s.Status = status
}

// ApplyError records a failure without touching the rendered snapshot and
// returns the user-visible copy for the failure kind.
func (s *DisplayState) ApplyError(err error) string {
	var message string
	switch model.KindOf(err) {
	case model.KindNotFound:
		message = msg.GetMessage("error.not-found", s.pendingOrCity())
	case model.KindAuth:
		message = msg.GetMessage("error.auth")
	case model.KindParse:
		message = msg.GetMessage("error.parse")
	default:
		message = msg.GetMessage("error.network")
	}
	s.Status = message
	return message
}

// SetPendingCity records the query text of the latest dispatched fetch, so a
// not-found message can name what the user actually typed.
func (s *DisplayState) SetPendingCity(city string) {
	s.pendingCity = city
}

func (s *DisplayState) pendingOrCity() string {
	if s.pendingCity != "" {
		return s.pendingCity
	}
	return s.City()
}
