package repair

// EventKind identifies which point in a repair run a progress Event
// represents.
type EventKind string

const (
	// EventStart is emitted once per object at the beginning of a
	// repairAll batch, before that object's repair begins.
	EventStart EventKind = "start"
	// EventProgress is emitted at each pipeline stage boundary and
	// periodically during hole filling.
	EventProgress EventKind = "progress"
	// EventDone is emitted once per object of a repairAll batch, after
	// that object's repair and diagnosis complete. A lone RepairObject
	// call emits neither EventStart nor EventDone.
	EventDone EventKind = "done"
)

// Event is a single progress token. Status is a human-readable narration
// string and is explicitly not part of the machine contract — callers
// should branch on Kind, not Status.
type Event struct {
	Kind     EventKind
	Index    int    // object index within a repairAll batch; 0 for a lone RepairObject call
	ObjectID string // object id within a repairAll batch; "" for a lone RepairObject call
	Total    int    // object count within a repairAll batch; 1 for a lone RepairObject call

	Status string

	Report    Report    // populated on EventDone
	Diagnosis Diagnosis // populated on EventDone
}

// ProgressSink receives progress tokens from a repair run. The sink is
// write-only and must not block the driver semantically: Emit is called
// synchronously and any panic or delay inside it is the caller's
// responsibility, not the driver's. A nil sink is always valid and
// makes a driver behave identically to one with reporting disabled.
type ProgressSink interface {
	Emit(Event)
}

// ProgressFunc adapts a plain func(Event) to the ProgressSink interface.
type ProgressFunc func(Event)

// Emit implements ProgressSink.
func (f ProgressFunc) Emit(e Event) {
	f(e)
}

// emitter narrows a config's sink to one (index, objectID, total)
// context, so the driver's internal stage narration doesn't need to
// thread batch position through every call.
type emitter struct {
	sink     ProgressSink
	index    int
	objectID string
	total    int
}

func newEmitter(cfg config, index int, objectID string, total int) emitter {
	return emitter{sink: cfg.sink, index: index, objectID: objectID, total: total}
}

func (e emitter) stage(status string) {
	if e.sink == nil {
		return
	}
	e.sink.Emit(Event{
		Kind:     EventProgress,
		Index:    e.index,
		ObjectID: e.objectID,
		Total:    e.total,
		Status:   status,
	})
}

func (e emitter) start() {
	if e.sink == nil {
		return
	}
	e.sink.Emit(Event{
		Kind:     EventStart,
		Index:    e.index,
		ObjectID: e.objectID,
		Total:    e.total,
		Status:   "repairing",
	})
}

func (e emitter) done(report Report, diagnosis Diagnosis) {
	if e.sink == nil {
		return
	}
	e.sink.Emit(Event{
		Kind:      EventDone,
		Index:     e.index,
		ObjectID:  e.objectID,
		Total:     e.total,
		Status:    "done",
		Report:    report,
		Diagnosis: diagnosis,
	})
}
