package v1handler

import (
	"handi/pkg/domain"
	"handi/pkg/serrors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func profileID(r *http.Request) (domain.ProfileID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.ProfileID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid profile id")
	}

	return domain.ProfileID(id), nil
}

func writeProfile(w http.ResponseWriter, status int, p *domain.Profile) {
	res := NewProfile(*p)
	writeJSON(w, status, &res)
}

// ListProfiles returns a page of profiles, newest first.
func (h Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := page(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	list, next, err := h.deps.Profiles.List(r.Context(), cursor, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res := NewProfileList(list, next)
	writeJSON(w, http.StatusOK, &res)
}

func (h Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileInput
	if err := readJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	created, err := h.deps.Profiles.Create(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeProfile(w, http.StatusCreated, created)
}

func (h Handler) GetActiveProfile(w http.ResponseWriter, r *http.Request) {
	active, err := h.deps.Profiles.Active(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeProfile(w, http.StatusOK, active)
}

func (h Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	profile, err := h.deps.Profiles.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeProfile(w, http.StatusOK, profile)
}

// UpdateProfile replaces the given fields. Updating the mappings of the
// active profile applies them immediately.
func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req ProfileUpdate
	if err := readJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	updated, err := h.deps.Profiles.Update(r.Context(), id, req.toDomain())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeProfile(w, http.StatusOK, updated)
}

func (h Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Profiles.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ApplyProfile makes the profile drive the engine.
func (h Handler) ApplyProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	applied, err := h.deps.Profiles.Apply(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeProfile(w, http.StatusOK, applied)
}

// ImportProfiles creates or replaces profiles from a YAML document stream.
func (h Handler) ImportProfiles(w http.ResponseWriter, r *http.Request) {
	imported, err := h.deps.Profiles.Import(r.Context(), http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res := NewProfileList(imported, "")
	writeJSON(w, http.StatusOK, &res)
}

// ExportProfiles writes profiles as YAML documents. The name query parameter
// may be repeated to select profiles; without it every profile is exported.
func (h Handler) ExportProfiles(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, n := range r.URL.Query()["name"] {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	var buf strings.Builder
	if err := h.deps.Profiles.Export(r.Context(), &buf, names...); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write([]byte(buf.String()))
}
