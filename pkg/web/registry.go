package web

import (
	"sync"

	"github.com/lemonlot/parking/pkg/reservation"
	"github.com/lemonlot/parking/pkg/vehicle"
)

// FlowFactory builds a fresh reservation flow for a session.
type FlowFactory func(vehicleRecord *vehicle.Record) *reservation.Flow

// FlowRegistry keeps one reservation flow per session so form state survives
// across requests.
type FlowRegistry struct {
	mu      sync.Mutex
	flows   map[string]*reservation.Flow
	factory FlowFactory
}

func NewFlowRegistry(factory FlowFactory) *FlowRegistry {
	return &FlowRegistry{
		flows:   map[string]*reservation.Flow{},
		factory: factory,
	}
}

func (r *FlowRegistry) GetOrCreate(sessionId string, vehicleRecord *vehicle.Record) *reservation.Flow {
	r.mu.Lock()
	defer r.mu.Unlock()
	if flow, ok := r.flows[sessionId]; ok {
		return flow
	}
	flow := r.factory(vehicleRecord)
	r.flows[sessionId] = flow
	return flow
}

// Reset discards the session's flow. Submitting the vehicle form again starts
// a new reservation.
func (r *FlowRegistry) Reset(sessionId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, sessionId)
}
