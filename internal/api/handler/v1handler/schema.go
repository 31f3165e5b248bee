package v1handler

import (
	"handi/internal/engine"
	"handi/internal/profiles"
	"handi/pkg/domain"
	"handi/pkg/midiout"
	"time"

	"github.com/google/uuid"
)

// Opt is an optional value. Unset values are omitted from documents.
type Opt[T any] struct {
	Value T
	Set   bool
}

// NewOpt returns a set Opt holding v.
func NewOpt[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Ptr returns a pointer to the value, or nil when unset.
func (o Opt[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	v := o.Value

	return &v
}

// ErrorBody is the JSON document returned with every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// Port describes a MIDI output port.
type Port struct {
	Number int
	Name   string
}

// PortList is the list of MIDI output ports.
type PortList []Port

// NewPortList maps driver ports to the API schema.
func NewPortList(ports []midiout.PortInfo) PortList {
	out := make(PortList, 0, len(ports))
	for _, p := range ports {
		out = append(out, Port{Number: p.Number, Name: p.Name})
	}

	return out
}

// TrackerSettings choose which frames and hands are classified.
type TrackerSettings struct {
	Camera        int
	MinConfidence float64
	Hand          string
}

// NewTrackerSettings maps engine settings to the API schema.
func NewTrackerSettings(s engine.TrackerSettings) TrackerSettings {
	return TrackerSettings{
		Camera:        s.Camera,
		MinConfidence: s.MinConfidence,
		Hand:          string(s.Hand),
	}
}

// TrackerUpdate changes the fields that are set.
type TrackerUpdate struct {
	Camera        Opt[int]
	MinConfidence Opt[float64]
	Hand          Opt[string]
}

// Apply returns s with the set fields replaced.
func (u TrackerUpdate) Apply(s engine.TrackerSettings) engine.TrackerSettings {
	if v, ok := u.Camera.Get(); ok {
		s.Camera = v
	}
	if v, ok := u.MinConfidence.Get(); ok {
		s.MinConfidence = v
	}
	if v, ok := u.Hand.Get(); ok {
		s.Hand = engine.HandSelector(v)
	}

	return s
}

// HandStatus describes the last selected hand.
type HandStatus struct {
	Camera     int
	Handedness string
	Score      float64
	SeenAt     time.Time
}

// Feedback is the live state of one mapping.
type Feedback struct {
	Gesture string
	Label   string
	Value   Opt[float64]
	Held    bool
}

// Status is the live state of the daemon.
type Status struct {
	FPS             float64
	FramesProcessed uint64
	FramesDropped   uint64
	Queued          int
	LastFrameAt     Opt[time.Time]
	Hand            *HandStatus
	Tracker         TrackerSettings
	Port            string
	Running         bool
	PlayingNotes    int
	Feedback        []Feedback
	// ActiveProfile and Recording are encoded as null when nil.
	ActiveProfile *Profile
	Recording     *Take
}

// NewStatus maps an engine snapshot, the active profile and the take being
// recorded to the API schema.
func NewStatus(st engine.Status, active *domain.Profile, recording *domain.Take) Status {
	out := Status{
		FPS:             st.FPS,
		FramesProcessed: st.FramesProcessed,
		FramesDropped:   st.FramesDropped,
		Queued:          st.Queued,
		Tracker:         NewTrackerSettings(st.Tracker),
		Port:            st.Port,
		Running:         st.Running,
		PlayingNotes:    st.PlayingNotes,
		Feedback:        make([]Feedback, 0, len(st.Feedback)),
	}
	if st.LastFrameAt != nil {
		out.LastFrameAt = NewOpt(*st.LastFrameAt)
	}
	if st.Hand != nil {
		out.Hand = &HandStatus{
			Camera:     st.Hand.Camera,
			Handedness: string(st.Hand.Handedness),
			Score:      st.Hand.Score,
			SeenAt:     st.Hand.SeenAt,
		}
	}
	for _, f := range st.Feedback {
		fb := Feedback{Gesture: string(f.Gesture), Label: f.Label, Held: f.Held}
		if f.Value != nil {
			fb.Value = NewOpt(*f.Value)
		}
		out.Feedback = append(out.Feedback, fb)
	}
	if active != nil {
		p := NewProfile(*active)
		out.ActiveProfile = &p
	}
	if recording != nil {
		t := NewTake(*recording)
		out.Recording = &t
	}

	return out
}

// Mapping binds one gesture to one MIDI command. Zero valued optional fields
// are omitted.
type Mapping struct {
	Gesture    string
	Active     bool
	Channel    uint8
	Param      string
	Controller uint8
	Smoothing  float64
	Action     string
	Note       uint8
	Velocity   uint8
}

func newMapping(m domain.Mapping) Mapping {
	return Mapping{
		Gesture:    string(m.Gesture),
		Active:     m.Active,
		Channel:    m.Channel,
		Param:      string(m.Param),
		Controller: m.Controller,
		Smoothing:  m.Smoothing,
		Action:     string(m.Action),
		Note:       m.Note,
		Velocity:   m.Velocity,
	}
}

func newMappings(ms []domain.Mapping) []Mapping {
	out := make([]Mapping, 0, len(ms))
	for _, m := range ms {
		out = append(out, newMapping(m))
	}

	return out
}

func (m Mapping) toDomain() domain.Mapping {
	return domain.Mapping{
		Gesture:    domain.GestureKind(m.Gesture),
		Active:     m.Active,
		Channel:    m.Channel,
		Param:      domain.MIDIParam(m.Param),
		Controller: m.Controller,
		Smoothing:  m.Smoothing,
		Action:     domain.BinaryAction(m.Action),
		Note:       m.Note,
		Velocity:   m.Velocity,
	}
}

func toDomainMappings(ms []Mapping) []domain.Mapping {
	out := make([]domain.Mapping, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}

	return out
}

// ProfileInput creates a profile.
type ProfileInput struct {
	Name        string
	Description string
	Mappings    []Mapping
}

func (in ProfileInput) toDomain() domain.Profile {
	return domain.Profile{
		Name:        in.Name,
		Description: in.Description,
		Mappings:    toDomainMappings(in.Mappings),
	}
}

// ProfileUpdate replaces the fields that are set.
type ProfileUpdate struct {
	Name        Opt[string]
	Description Opt[string]
	Mappings    Opt[[]Mapping]
}

func (u ProfileUpdate) toDomain() profiles.Update {
	out := profiles.Update{
		Name:        u.Name.Ptr(),
		Description: u.Description.Ptr(),
	}
	if ms, ok := u.Mappings.Get(); ok {
		mappings := toDomainMappings(ms)
		out.Mappings = &mappings
	}

	return out
}

// Profile is a named set of gesture mappings.
type Profile struct {
	ID          uuid.UUID
	Name        string
	Description string
	Mappings    []Mapping
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProfile maps a domain profile to the API schema.
func NewProfile(p domain.Profile) Profile {
	return Profile{
		ID:          uuid.UUID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Mappings:    newMappings(p.Mappings),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProfileList is a page of profiles.
type ProfileList struct {
	Items      []Profile
	NextCursor Opt[string]
}

// NewProfileList maps a page of profiles to the API schema.
func NewProfileList(items []domain.Profile, next string) ProfileList {
	out := ProfileList{Items: make([]Profile, 0, len(items))}
	for _, p := range items {
		out.Items = append(out.Items, NewProfile(p))
	}
	if next != "" {
		out.NextCursor = NewOpt(next)
	}

	return out
}

// Take is a recording of the MIDI output.
type Take struct {
	ID         uuid.UUID
	ProfileID  Opt[uuid.UUID]
	Status     string
	EventCount int
	Attempts   uint
	LastError  Opt[string]
	StartedAt  time.Time
	StoppedAt  Opt[time.Time]
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTake maps a domain take to the API schema.
func NewTake(t domain.Take) Take {
	out := Take{
		ID:         uuid.UUID(t.ID),
		Status:     string(t.Status),
		EventCount: t.EventCount,
		Attempts:   t.Attempts,
		StartedAt:  t.StartedAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.ProfileID != nil {
		out.ProfileID = NewOpt(uuid.UUID(*t.ProfileID))
	}
	if t.LastError != "" {
		out.LastError = NewOpt(t.LastError)
	}
	if !t.StoppedAt.IsZero() {
		out.StoppedAt = NewOpt(t.StoppedAt)
	}

	return out
}

// TakeList is a page of takes.
type TakeList struct {
	Items      []Take
	NextCursor Opt[string]
}

// NewTakeList maps a page of takes to the API schema.
func NewTakeList(items []domain.Take, next string) TakeList {
	out := TakeList{Items: make([]Take, 0, len(items))}
	for _, t := range items {
		out.Items = append(out.Items, NewTake(t))
	}
	if next != "" {
		out.NextCursor = NewOpt(next)
	}

	return out
}
