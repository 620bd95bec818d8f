package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Items())
}

type addToCartReq struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	entries, err := h.Cart.Add(req.ItemID, req.Quantity)
	if err != nil {
		h.writeError(w, err, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.List())
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	// An unparsable id matches no entry: return the cart unchanged.
	id, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		writeJSON(w, http.StatusOK, h.Cart.List())
		return
	}
	writeJSON(w, http.StatusOK, h.Cart.Remove(id))
}
