package v1handler

import (
	"fortune/pkg/domain"
	"net/http"

	"github.com/go-faster/jx"
)

// emptyCategories is sent if encoding ever yields invalid JSON.
const emptyCategories = "[]"

// EncodeCategories renders set as a JSON object keyed by category name, each
// mapped to an empty object: {"riddles":{},"wisdom":{}}. Keys are sorted.
func EncodeCategories(set *domain.CategorySet) []byte {
	var e jx.Encoder
	e.ObjStart()
	for _, c := range set.Names() {
		e.FieldStart(string(c))
		e.ObjStart()
		e.ObjEnd()
	}
	e.ObjEnd()

	if !jx.Valid(e.Bytes()) {
		return []byte(emptyCategories)
	}

	return e.Bytes()
}

// Categories lists the categories found at startup. It always answers 200.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	h.write(r.Context(), w, "categories", http.StatusOK, EncodeCategories(h.deps.Fortuner.Categories()))
}
