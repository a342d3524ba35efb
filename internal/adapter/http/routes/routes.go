package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "phone_repair/docs"
	"phone_repair/internal/adapter/http/handlers"
	"phone_repair/internal/adapter/http/middleware"
	"phone_repair/internal/usecase"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases served over HTTP.
type Dependencies struct {
	Logger        *zap.Logger
	Customers     usecase.ICustomerUseCase
	RecordNumbers usecase.IRecordNumberUseCase
	Quotes        usecase.IQuoteUseCase
	CashLedger    usecase.ICashLedgerUseCase
	Revenue       usecase.IRevenueUseCase
}

// NewRouter builds the gin engine with middlewares, API docs and every resource route.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rg := &router.RouterGroup
	addPingRoutes(rg)
	addCustomerRoutes(rg, handlers.NewCustomerHandler(deps.Customers, logger))
	addQuoteRoutes(rg,
		handlers.NewQuoteHandler(deps.Quotes, logger),
		handlers.NewRecordNumberHandler(deps.RecordNumbers, logger),
	)
	addLedgerRoutes(rg,
		handlers.NewCashLedgerHandler(deps.CashLedger, logger),
		handlers.NewRevenueHandler(deps.Revenue, logger),
	)
	return router
}

// NewHandler wraps the router with CORS for every origin.
func NewHandler(router http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})
	return c.Handler(router)
}

// Run serves the API on port until ctx is canceled, then drains in-flight requests.
func Run(ctx context.Context, port int, deps Dependencies) error {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           NewHandler(NewRouter(deps)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown the application: %w", err)
	}
	return nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Recovery(logger))
}
