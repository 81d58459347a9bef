// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	appcfg "github.com/MhmdMaazin/ecommerce-platform/internal/infra/config"
	"github.com/MhmdMaazin/ecommerce-platform/internal/platform/di"
)

// atomicHandler allows swapping the underlying handler at runtime safely,
// so /healthz answers before DI finishes connecting to GCP.
type atomicHandler struct {
	v atomic.Value // stores http.Handler
}

func newAtomicHandler(initial http.Handler) *atomicHandler {
	ah := &atomicHandler{}
	if initial == nil {
		initial = http.NotFoundHandler()
	}
	ah.v.Store(initial)
	return ah
}

func (h *atomicHandler) Store(next http.Handler) {
	if next != nil {
		h.v.Store(next)
	}
}

func (h *atomicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.v.Load().(http.Handler).ServeHTTP(w, r)
}

// infraHolder hands the Infra pointer from the boot goroutine to the
// shutdown goroutine; a plain variable would race between the two.
type infraHolder struct {
	v atomic.Pointer[di.Infra]
}

func (h *infraHolder) Store(inf *di.Infra) { h.v.Store(inf) }
func (h *infraHolder) Load() *di.Infra     { return h.v.Load() }

func main() {
	ctx := context.Background()
	cfg := appcfg.Load()

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	switcher := newAtomicHandler(healthMux)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      switcher,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var infra infraHolder

	// Build the real router in the background; the listener is already up.
	go func() {
		inf, err := di.NewInfra(ctx)
		if err != nil {
			log.Fatalf("[boot] infra init failed: %v", err)
		}
		infra.Store(inf)

		c := di.NewContainer(ctx, inf)
		switcher.Store(c.Handler)
		log.Printf("[boot] storefront api ready")
	}()

	idleConnsClosed := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Printf("[boot] shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[boot] WARN: server shutdown: %v", err)
		}
		if inf := infra.Load(); inf != nil {
			_ = inf.Close()
		}
		close(idleConnsClosed)
	}()

	log.Printf("[boot] listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[boot] ListenAndServe: %v", err)
	}
	<-idleConnsClosed
}
