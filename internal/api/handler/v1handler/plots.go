package v1handler

import (
	"encoding/json"
	"net/http"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createPlotRequest struct {
	PlotNumber  string            `json:"plot_number" validate:"max=64"`
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description"`
	AreaSqm     *decimal.Decimal  `json:"area_sqm" validate:"required"`
	Price       *decimal.Decimal  `json:"price" validate:"required"`
	ImageURLs   []string          `json:"image_urls" validate:"omitempty,dive,max=2048"`
	UsageType   string            `json:"usage_type" validate:"max=64"`
	Status      domain.PlotStatus `json:"status"`
	CouncilID   *int64            `json:"council_id"`
	Boundary    json.RawMessage   `json:"boundary"`
}

type updatePlotRequest struct {
	PlotNumber  *string            `json:"plot_number" validate:"omitempty,max=64"`
	Title       *string            `json:"title" validate:"omitempty,max=255"`
	Description *string            `json:"description"`
	AreaSqm     *decimal.Decimal   `json:"area_sqm"`
	Price       *decimal.Decimal   `json:"price"`
	ImageURLs   *[]string          `json:"image_urls" validate:"omitempty,dive,max=2048"`
	UsageType   *string            `json:"usage_type" validate:"omitempty,max=64"`
	Status      *domain.PlotStatus `json:"status"`
	CouncilID   *int64             `json:"council_id"`
	Boundary    *json.RawMessage   `json:"boundary"`
}

func plotID(r *http.Request) (domain.PlotID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.PlotID{}, notFound("plot")
	}

	return domain.PlotID(id), nil
}

func queryDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a decimal number", name)
	}

	return &v, nil
}

// plotFilter builds a search filter from the query string.
func plotFilter(r *http.Request) (storage.PlotFilter, error) {
	q := r.URL.Query()
	filter := storage.PlotFilter{
		Search:    q.Get("search"),
		UsageType: q.Get("usage_type"),
		Status:    domain.PlotStatus(q.Get("status")),
	}

	var err error
	if filter.Offset, filter.Limit, err = page(r); err != nil {
		return filter, err
	}

	for name, dst := range map[string]**decimal.Decimal{
		"min_price": &filter.MinPrice,
		"max_price": &filter.MaxPrice,
		"min_area":  &filter.MinArea,
		"max_area":  &filter.MaxArea,
	} {
		if *dst, err = queryDecimal(r, name); err != nil {
			return filter, err
		}
	}

	for name, dst := range map[string]**int64{
		"region_id":   &filter.RegionID,
		"district_id": &filter.DistrictID,
		"council_id":  &filter.CouncilID,
	} {
		if *dst, err = queryInt64(r, name); err != nil {
			return filter, err
		}
	}

	return filter, nil
}

func (h Handler) SearchPlots(w http.ResponseWriter, r *http.Request) {
	filter, err := plotFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Plots.Search(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) GetPlot(w http.ResponseWriter, r *http.Request) {
	id, err := plotID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Plots.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) CreatePlot(w http.ResponseWriter, r *http.Request) {
	var req createPlotRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	imageURLs := req.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	user, _ := UserFromContext(r.Context())
	res, err := h.deps.Plots.Create(r.Context(), user, domain.Plot{
		PlotNumber:  req.PlotNumber,
		Title:       req.Title,
		Description: req.Description,
		AreaSqm:     *req.AreaSqm,
		Price:       *req.Price,
		ImageURLs:   imageURLs,
		UsageType:   req.UsageType,
		Status:      req.Status,
		CouncilID:   req.CouncilID,
		Boundary:    req.Boundary,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) UpdatePlot(w http.ResponseWriter, r *http.Request) {
	id, err := plotID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req updatePlotRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Plots.Update(r.Context(), id, storage.PlotUpdates{
		PlotNumber:  req.PlotNumber,
		Title:       req.Title,
		Description: req.Description,
		AreaSqm:     req.AreaSqm,
		Price:       req.Price,
		ImageURLs:   req.ImageURLs,
		UsageType:   req.UsageType,
		Status:      req.Status,
		CouncilID:   req.CouncilID,
		Boundary:    req.Boundary,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) DeletePlot(w http.ResponseWriter, r *http.Request) {
	id, err := plotID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Plots.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, map[string]string{"message": "Plot deleted successfully"})
}

func (h Handler) LockPlot(w http.ResponseWriter, r *http.Request) {
	id, err := plotID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := UserFromContext(r.Context())
	res, err := h.deps.Plots.Lock(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) UnlockPlot(w http.ResponseWriter, r *http.Request) {
	id, err := plotID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := UserFromContext(r.Context())
	res, err := h.deps.Plots.Unlock(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}
