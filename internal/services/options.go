package services

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/navbug/storefront-core/internal/app/cart"
	cartdomain "github.com/navbug/storefront-core/internal/app/cart/domain"
	"github.com/navbug/storefront-core/internal/app/catalog"
	"github.com/navbug/storefront-core/internal/app/order"
	"github.com/navbug/storefront-core/internal/config"
	"github.com/navbug/storefront-core/internal/pkg/clock"
	"github.com/navbug/storefront-core/internal/transport/httpapi"
)

// ServiceOptions is the application context: every store, controller
// and client the SDK exposes, wired once and passed by reference. No
// package-level singletons.
type ServiceOptions struct {
	Logger *zap.Logger

	CartStore      *cart.Store
	CartController *cart.Controller

	CatalogStore      *catalog.Store
	CatalogController *catalog.Controller

	Checkout *order.Checkout

	Catalog *httpapi.CatalogClient
	Orders  *httpapi.OrderClient
	Admin   *httpapi.AdminClient
	Users   *httpapi.UserClient
}

// NewServiceOptions wires the SDK from configuration. The token, when
// non-empty, is attached to every API request.
func NewServiceOptions(cfg config.Config, token string) (*ServiceOptions, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	// Infrastructure.
	clk := clock.NewRealClock()
	apiClient := httpapi.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, logger, httpapi.WithToken(token))
	catalogClient := httpapi.NewCatalogClient(apiClient)
	orderClient := httpapi.NewOrderClient(apiClient)
	adminClient := httpapi.NewAdminClient(apiClient)
	userClient := httpapi.NewUserClient(apiClient)

	// Cart.
	pricing := cartdomain.PricingPolicy{
		FreeShippingOver: cartdomain.MoneyFromInt(cfg.FreeShippingOver),
		FlatShippingFee:  cartdomain.MoneyFromInt(cfg.FlatShippingFee),
	}
	cartStore := cart.NewStore(pricing, clk)
	cartController := cart.NewController(cartStore, logger)

	// Catalog listing.
	catalogStore := catalog.NewStore()
	catalogController := catalog.NewController(catalogStore, catalogClient, cfg.PageSize, logger)

	// Checkout.
	checkout := order.NewCheckout(cartController, orderClient, logger)

	return &ServiceOptions{
		Logger:            logger,
		CartStore:         cartStore,
		CartController:    cartController,
		CatalogStore:      catalogStore,
		CatalogController: catalogController,
		Checkout:          checkout,
		Catalog:           catalogClient,
		Orders:            orderClient,
		Admin:             adminClient,
		Users:             userClient,
	}, nil
}

// Close flushes buffered log output.
func (s *ServiceOptions) Close() {
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
