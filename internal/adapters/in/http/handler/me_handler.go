// internal/adapters/in/http/handler/me_handler.go
package handler

import (
	"net/http"

	mw "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/middleware"
)

// MeHandler echoes the identity of the verified token. The frontend uses it
// to confirm a session after sign-in.
type MeHandler struct{}

func (h *MeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	uid, email, ok := mw.CurrentUIDAndEmail(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"uid":   uid,
		"email": email,
	})
}
