package v1handler

import (
	"mime"
	"net/http"
	"plotmarket/internal/users"
	"plotmarket/pkg/serrors"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login accepts a JSON body or an OAuth2 password form (username, password).
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseForm(); err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid form body"))

			return
		}
		req.Email = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
		if err := h.check(req); err != nil {
			h.writeError(w, r, err)

			return
		}
	default:
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)

			return
		}
	}

	token, err := h.deps.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, token)
}

type registerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required"`
}

func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Users.Register(r.Context(), users.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, user)
}
