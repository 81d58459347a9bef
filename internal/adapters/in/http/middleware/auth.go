// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
)

type ctxKey int

const (
	ctxKeyUID ctxKey = iota
	ctxKeyEmail
)

// TokenVerifier abstracts Firebase ID-token verification (for tests).
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// Auth verifies the Firebase ID token on every request and stores uid/email
// in the request context. Callers never supply their own uid; the verified
// token is the only identity source.
type Auth struct {
	Verifier TokenVerifier
}

func (m *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || m.Verifier == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}
		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.Verifier.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		email := ""
		if raw, ok := token.Claims["email"]; ok {
			if e, ok2 := raw.(string); ok2 {
				email = strings.TrimSpace(e)
			}
		}

		ctx := context.WithValue(r.Context(), ctxKeyUID, uid)
		if email != "" {
			ctx = context.WithValue(ctx, ctxKeyEmail, email)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUID returns the verified Firebase uid for the request.
func CurrentUID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyUID)
	uid, ok := v.(string)
	if !ok || strings.TrimSpace(uid) == "" {
		return "", false
	}
	return strings.TrimSpace(uid), true
}

// CurrentUIDAndEmail returns uid and the token email (email may be empty).
func CurrentUIDAndEmail(r *http.Request) (uid string, email string, ok bool) {
	uid, ok = CurrentUID(r)
	if !ok {
		return "", "", false
	}
	if v := r.Context().Value(ctxKeyEmail); v != nil {
		if e, ok2 := v.(string); ok2 {
			email = strings.TrimSpace(e)
		}
	}
	return uid, email, true
}
