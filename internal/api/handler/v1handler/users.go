package v1handler

import (
	"net/http"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	h.respond(w, r, http.StatusOK, user)
}

type updateMeRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
}

func (h Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := UserFromContext(r.Context())
	updated, err := h.deps.Users.UpdateMe(r.Context(), user, storage.UserProfileUpdates{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, updated)
}

func (h Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := page(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Users.List(r.Context(), skip, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, notFound("user"))

		return
	}

	user, err := h.deps.Users.Get(r.Context(), domain.UserID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, user)
}
