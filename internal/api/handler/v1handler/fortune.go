package v1handler

import (
	"net/http"
	"strings"
)

// Fortune answers with a random fortune, limited to the category given in the
// "category" query parameter when present.
func (h *Handler) Fortune(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	text, err := h.deps.Fortuner.Fortune(ctx, category)
	if err != nil {
		res := h.NewError(ctx, err)
		h.write(ctx, w, "fortune", res.StatusCode, []byte(res.Message))

		return
	}

	h.write(ctx, w, "fortune", http.StatusOK, []byte(text))
}
