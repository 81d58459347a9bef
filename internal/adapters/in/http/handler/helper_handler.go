// internal/adapters/in/http/handler/helper_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "github.com/MhmdMaazin/ecommerce-platform/internal/application/usecase"
	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
	productdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/product"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(msg)})
}

// readJSON decodes a size-capped request body, rejecting unknown fields so
// malformed payloads fail at the boundary instead of storing junk.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeUsecaseErr maps domain/usecase errors onto the error taxonomy:
// invalid argument -> 400, not found -> 404, anything else -> logged 500
// with a generic body.
func writeUsecaseErr(w http.ResponseWriter, tag string, err error) {
	switch {
	case err == nil:
		writeErr(w, http.StatusInternalServerError, "unknown error")
	case errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrOrderInvalidArgument),
		errors.Is(err, usecase.ErrProductInvalidArgument):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orderdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "order not found")
	case errors.Is(err, productdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "product not found")
	default:
		log.Printf("[%s] upstream error: %v", tag, err)
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}
