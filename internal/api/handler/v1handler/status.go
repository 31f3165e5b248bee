package v1handler

import (
	"errors"
	"handi/pkg/serrors"
	"net/http"
)

// GetStatus returns engine statistics, per mapping feedback, the active
// profile and the take being recorded.
func (h Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	active, err := h.deps.Profiles.Active(r.Context())
	if err != nil && !errors.Is(err, serrors.ErrNotFound) {
		h.writeError(w, r, err)

		return
	}

	res := NewStatus(h.deps.Engine.Status(), active, h.deps.Takes.Recording())
	writeJSON(w, http.StatusOK, &res)
}

// StopMIDI releases held gestures and silences every sounding note.
func (h Handler) StopMIDI(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Engine.Panic(r.Context()); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPorts returns the MIDI output ports offered by the driver.
func (h Handler) ListPorts(w http.ResponseWriter, _ *http.Request) {
	res := NewPortList(h.deps.Ports())
	writeJSON(w, http.StatusOK, &res)
}

func (h Handler) GetTracker(w http.ResponseWriter, _ *http.Request) {
	res := NewTrackerSettings(h.deps.Engine.Tracker())
	writeJSON(w, http.StatusOK, &res)
}

// UpdateTracker changes the camera filter, confidence threshold or hand
// selector. Omitted fields keep their value.
func (h Handler) UpdateTracker(w http.ResponseWriter, r *http.Request) {
	var req TrackerUpdate
	if err := readJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Engine.SetTracker(req.Apply(h.deps.Engine.Tracker())); err != nil {
		h.writeError(w, r, err)

		return
	}

	res := NewTrackerSettings(h.deps.Engine.Tracker())
	writeJSON(w, http.StatusOK, &res)
}
