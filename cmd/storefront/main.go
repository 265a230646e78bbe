package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	cartapp "github.com/dwikikusuma/crypto-storefront/internal/cart/app"
	cartmem "github.com/dwikikusuma/crypto-storefront/internal/cart/infra/memory"

	catalogapp "github.com/dwikikusuma/crypto-storefront/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/crypto-storefront/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/crypto-storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/crypto-storefront/internal/checkout/infra/adapter"

	"github.com/dwikikusuma/crypto-storefront/internal/httpapi"
	"github.com/dwikikusuma/crypto-storefront/pkg/config"
	"github.com/dwikikusuma/crypto-storefront/pkg/logger"
	"github.com/dwikikusuma/crypto-storefront/pkg/metrics"
	"github.com/dwikikusuma/crypto-storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background(), log)
	defer cancel()

	rates, err := cfg.Rates()
	if err != nil {
		log.Error("invalid rate table", slog.Any("err", err))
		os.Exit(1)
	}

	m := metrics.NewServerMetrics(prometheus.DefaultRegisterer, "api")

	// Catalog
	catalogRepo, err := catalogmem.NewProductRepo(catalogmem.DefaultProducts())
	if err != nil {
		log.Error("catalog init failed", slog.Any("err", err))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(),
		cartapp.LogObserver(log),
		func(c cartapp.Change) {
			m.RecordCart(string(c.Op), len(c.Cart.Lines), c.Cart.ItemCount())
		},
	)

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, rates, cfg.CheckoutMaxConcurrent)

	handler := httpapi.NewHandler(httpapi.Deps{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Metrics:  m,
		Log:      log,
		QRSize:   cfg.QRSize,
	})

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              httpAddr,
		Handler:           httpapi.NewRouter(handler, prometheus.DefaultGatherer),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	healthSrv := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc health starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")
	healthSrv.Shutdown()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stopCancel()

	if err := server.Shutdown(stopCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopCtx.Done():
		log.Warn("graceful stop timeout, forcing stop")
		grpcServer.Stop()
	case <-stopped:
	}

	wg.Wait()
	log.Info("bye")
}
