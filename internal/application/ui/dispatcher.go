package ui

import (
	"github.com/google/uuid"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/usecase/weather"
	"skycast/pkg/log"
)

// Dispatcher runs fetches on background goroutines and hands each result back
// to the single UI-owning context. Delivery is last-request-wins: every
// dispatch gets a fresh id, and a completion whose id no longer matches the
// latest dispatched id is dropped without touching the UI.
//
// Dispatch and the delivered callbacks all run on the UI context (runOnUI is
// the marshal point), so latestID needs no locking.
type Dispatcher struct {
	useCase  weather.UseCase
	runOnUI  func(func())
	latestID string
}

// NewDispatcher creates a Dispatcher. runOnUI must execute the given function
// on the UI context; with Fyne that is fyne.Do.
func NewDispatcher(useCase weather.UseCase, runOnUI func(func())) *Dispatcher {
	return &Dispatcher{
		useCase: useCase,
		runOnUI: runOnUI,
	}
}

// Dispatch starts a background fetch for query. Exactly one of onResult or
// onError is invoked on the UI context, unless a newer dispatch supersedes
// this one, in which case neither is.
func (d *Dispatcher) Dispatch(query entity.LocationQuery, units entity.UnitSystem, onResult func(*model.WeatherSnapshot), onError func(error)) {
	requestID := uuid.New().String()
	d.latestID = requestID

	log.Infow("dispatching fetch", "request_id", requestID, "city", query.City, "units", units)

	go func() {
		snapshot, err := d.useCase.FetchSnapshot(query, units)

		d.runOnUI(func() {
			if d.latestID != requestID {
				log.Infow("discarding stale fetch result", "request_id", requestID, "city", query.City)
				return
			}

			if err != nil {
				onError(err)
				return
			}
			onResult(snapshot)
		})
	}()
}
