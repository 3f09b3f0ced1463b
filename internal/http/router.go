package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/freshtrack/docs"
	"github.com/rogerio-castellano/freshtrack/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.FilterProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/barcode/{barcode}", handlers.GetProductByBarcodeHandler)

	r.Get("/stats/dashboard", handlers.GetDashboardStatsHandler)
	r.Get("/settings", handlers.GetSettingsHandler)
	r.Get("/notifications/pending", handlers.GetPendingNotificationHandler)

	r.Get("/barcodes/{code}", handlers.LookupBarcodeHandler)
	r.Get("/scans", handlers.GetScanEventsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Put("/settings", handlers.PutSettingsHandler)
		r.Post("/scan/decode", handlers.DecodeHandler)
		r.Delete("/notifications/pending", handlers.ClearPendingNotificationHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
