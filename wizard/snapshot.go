package wizard

import "github.com/foundrly/foundrly/content"

// Snapshot is the JSON-ready view of a wizard the dashboard renders
// from. Content is a copy; mutating it does not touch the session.
type Snapshot struct {
	ID      string                   `json:"wizard_id"`
	Surface content.Surface          `json:"surface"`
	Phase   Phase                    `json:"phase"`
	Step    int                      `json:"step"`
	Brand   content.BrandInput       `json:"brand"`
	TypeID  string                   `json:"type_id,omitempty"`
	Catalog []content.TypeDescriptor `json:"catalog"`
	// Content is typed as any so API clients can decode a snapshot
	// without knowing the surface up front.
	Content   any                `json:"content,omitempty"`
	Chat      []ChatMessage      `json:"chat,omitempty"`
	Slots     []RecommendedSlot  `json:"slots"`
	Schedule  *ScheduleSelection `json:"schedule,omitempty"`
	Connected bool               `json:"connected"`
}

// Snapshot captures the wizard's current state.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		ID:        w.id,
		Surface:   w.surface,
		Phase:     w.phase,
		Step:      w.phase.Step(),
		Brand:     w.brand,
		TypeID:    w.typeID,
		Catalog:   content.Catalog(w.surface),
		Chat:      append([]ChatMessage(nil), w.chat...),
		Slots:     append([]RecommendedSlot(nil), w.slots...),
		Connected: w.conn.Connected,
	}
	if w.content != nil {
		snap.Content = w.content.Clone()
	}
	if w.schedule != nil {
		s := *w.schedule
		snap.Schedule = &s
	}
	return snap
}
