// internal/platform/di/container.go
package di

import (
	"context"
	"log"
	"net/http"

	httpapi "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http"
	"github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/handler"
	mw "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/in/http/middleware"
	pgdb "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/db"
	fs "github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/firestore"
	"github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/gcs"
	"github.com/MhmdMaazin/ecommerce-platform/internal/adapters/out/mail"
	usecase "github.com/MhmdMaazin/ecommerce-platform/internal/application/usecase"
)

// Container wires repositories, usecases and handlers into the router.
type Container struct {
	Infra   *Infra
	Handler http.Handler
}

func NewContainer(ctx context.Context, inf *Infra) *Container {
	// repositories
	productRepo := fs.NewProductRepositoryFS(inf.Firestore)
	cartRepo := fs.NewCartRepositoryFS(inf.Firestore)
	orderRepo := fs.NewOrderRepositoryFS(inf.Firestore)

	// optional image signing
	var images usecase.ImageURLResolver
	if inf.GCS != nil {
		images = gcs.NewImageURLSigner(inf.GCS)
	}

	// usecases
	productUC := usecase.NewProductUsecase(productRepo, images)
	cartUC := usecase.NewCartUsecase(cartRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo)

	// optional order archive
	if inf.ArchiveDB != nil {
		archive := pgdb.NewOrderArchivePG(inf.ArchiveDB)
		if err := archive.EnsureSchema(ctx); err != nil {
			log.Printf("[di.container] WARN: order archive disabled: %v", err)
		} else {
			orderUC.WithArchive(archive)
			log.Printf("[di.container] order archive enabled")
		}
	}

	// optional confirmation mail
	if key := inf.ResolveSendGridKey(ctx); key != "" && inf.Config.OrderEmailFrom != "" {
		orderUC.WithMail(mail.NewSendGridClient(key), inf.Config.OrderEmailFrom)
		log.Printf("[di.container] order confirmation mail enabled")
	} else {
		log.Printf("[di.container] order confirmation mail disabled")
	}

	auth := &mw.Auth{}
	if inf.FirebaseAuth != nil {
		auth.Verifier = inf.FirebaseAuth
	} else {
		log.Printf("[di.container] WARN: Firebase Auth unavailable; authenticated routes will return 503")
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Auth:          auth,
		Cart:          handler.NewCartHandler(cartUC),
		Orders:        handler.NewOrderHandler(orderUC),
		Product:       handler.NewProductHandler(productUC),
		Me:            &handler.MeHandler{},
		AllowedOrigin: inf.Config.AllowedOrigin,
	})

	return &Container{Infra: inf, Handler: router}
}
