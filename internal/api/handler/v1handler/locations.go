package v1handler

import "net/http"

func (h Handler) Regions(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Locations.Regions(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) Districts(w http.ResponseWriter, r *http.Request) {
	regionID, err := queryInt64(r, "region_id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Locations.Districts(r.Context(), regionID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}

func (h Handler) Councils(w http.ResponseWriter, r *http.Request) {
	districtID, err := queryInt64(r, "district_id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Locations.Councils(r.Context(), districtID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.respond(w, r, http.StatusOK, res)
}
