package v1handler

import (
	"net/http"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createOrderRequest struct {
	PlotID string `json:"plot_id" validate:"required,uuid"`
}

type updateOrderRequest struct {
	Status domain.OrderStatus `json:"order_status" validate:"required"`
}

func orderID(r *http.Request) (domain.OrderID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.OrderID{}, notFound("order")
	}

	return domain.OrderID(id), nil
}

func (h Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := page(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := UserFromContext(r.Context())
	res, err := h.deps.Orders.List(r.Context(), user, skip, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := UserFromContext(r.Context())
	res, err := h.deps.Orders.Get(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	plotID, err := uuid.Parse(req.PlotID)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid plot_id"))

		return
	}

	user, _ := UserFromContext(r.Context())
	res, err := h.deps.Orders.Create(r.Context(), user, domain.PlotID(plotID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req updateOrderRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Orders.Update(r.Context(), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}
