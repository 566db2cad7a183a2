package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tripdesk/api"
	"tripdesk/config"
	"tripdesk/internal/service/board"
	"tripdesk/internal/service/commission"
	"tripdesk/internal/service/engagement"
	"tripdesk/internal/service/itinerary"
	"tripdesk/internal/service/payment"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	boardSvc board.BoardUseCase,
	itinerarySvc itinerary.ItineraryUseCase,
	engagementSvc engagement.EngagementUseCase,
	commissionSvc commission.CommissionUseCase,
	paymentSvc payment.PaymentUseCase,
) error {
	srv := newServer(cfg, boardSvc, itinerarySvc, engagementSvc, commissionSvc, paymentSvc)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(
	cfg *config.Config,
	boardSvc board.BoardUseCase,
	itinerarySvc itinerary.ItineraryUseCase,
	engagementSvc engagement.EngagementUseCase,
	commissionSvc commission.CommissionUseCase,
	paymentSvc payment.PaymentUseCase,
) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())

	boardHandler := api.NewBoardHandler(boardSvc)
	enquiryHandler := api.NewEnquiryHandler(boardSvc)
	itineraryHandler := api.NewItineraryHandler(itinerarySvc)
	engagementHandler := api.NewEngagementHandler(engagementSvc)
	commissionHandler := api.NewCommissionHandler(commissionSvc)
	paymentHandler := api.NewPaymentHandler(paymentSvc)

	boardHandler.Register(router.Group("/api/board"))
	enquiriesGroup := router.Group("/api/enquiries")
	enquiryHandler.Register(enquiriesGroup)
	itineraryHandler.RegisterEnquiryRoutes(enquiriesGroup)
	itineraryHandler.Register(router.Group("/api/itineraries"))
	engagementHandler.RegisterFeedback(router.Group("/api/feedback"))
	engagementHandler.RegisterSending(router.Group("/api/sharing"))
	commissionHandler.Register(router.Group("/api/commissions"))
	paymentHandler.Register(router.Group("/api/payment-methods"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/tripdesk.swagger.json"),
		)))
	}

	return &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
