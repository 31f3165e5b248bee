package v1handler

import (
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func takeID(r *http.Request) (domain.TakeID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.TakeID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid take id")
	}

	return domain.TakeID(id), nil
}

func writeTake(w http.ResponseWriter, status int, t *domain.Take) {
	res := NewTake(*t)
	writeJSON(w, status, &res)
}

// ListTakes returns a page of takes, newest first.
func (h Handler) ListTakes(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	list, next, err := h.deps.Takes.List(r.Context(), cursor, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res := NewTakeList(list, next)
	writeJSON(w, http.StatusOK, &res)
}

// StartTake starts recording the MIDI output.
func (h Handler) StartTake(w http.ResponseWriter, r *http.Request) {
	take, err := h.deps.Takes.Start(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeTake(w, http.StatusCreated, take)
}

// StopTake stops the current recording and queues it for rendering.
func (h Handler) StopTake(w http.ResponseWriter, r *http.Request) {
	take, err := h.deps.Takes.Stop(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeTake(w, http.StatusAccepted, take)
}

func (h Handler) GetTake(w http.ResponseWriter, r *http.Request) {
	id, err := takeID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	take, err := h.deps.Takes.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeTake(w, http.StatusOK, take)
}

func (h Handler) DeleteTake(w http.ResponseWriter, r *http.Request) {
	id, err := takeID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Takes.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTakeSMF downloads the rendered Standard MIDI File.
func (h Handler) GetTakeSMF(w http.ResponseWriter, r *http.Request) {
	id, err := takeID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	file, err := h.deps.Takes.SMF(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Length", strconv.Itoa(len(file)))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="take-%s.mid"`, id))
	_, _ = w.Write(file)
}
