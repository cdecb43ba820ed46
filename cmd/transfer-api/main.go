// README: Entry point; loads config, wires services and serves the HTTP API until SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transfer/internal/config"
	httptransport "transfer/internal/http"
	"transfer/internal/infra"
	"transfer/internal/logging"
	gmaps "transfer/internal/maps"
	"transfer/internal/modules/coupon"
	"transfer/internal/modules/distance"
	"transfer/internal/modules/location"
	"transfer/internal/modules/payment"
	"transfer/internal/modules/pricing"
	"transfer/internal/modules/reservation"
	"transfer/internal/observability"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if dbPool != nil {
		defer dbPool.Close()
	} else {
		logger.Warn(ctx, "TRANSFER_DB_DSN not set; coupon usage tracking disabled")
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	mapsClient, err := infra.NewMaps(cfg.Maps.APIKey)
	if err != nil {
		log.Fatal(err)
	}

	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		log.Fatal(err)
	}

	identifier := location.DefaultIdentifier()
	selections := location.NewStore(redisClient)

	var (
		places     location.Places
		geocodeAPI distance.GeocodeAPI
		estimators []distance.Estimator
	)
	if mapsClient != nil {
		routeSvc := gmaps.NewRouteService(mapsClient)
		places = gmaps.NewPlacesService(mapsClient)
		geocodeAPI = routeSvc
		estimators = append(estimators,
			distance.NewDirectionsEstimator(routeSvc),
			distance.NewMatrixEstimator(routeSvc),
		)
	} else {
		logger.Warn(ctx, "TRANSFER_MAPS_API_KEY not set; using OSRM and straight-line distances")
	}
	geocoder := distance.NewGeocoder(selections, geocodeAPI)
	estimators = append(estimators,
		distance.NewOSRMEstimator(geocoder, cfg.Distance.OSRMBaseURL, nil),
		distance.NewHaversineEstimator(geocoder),
	)

	var routeCache distance.RouteCache
	switch cfg.Distance.CacheBackend {
	case "redis":
		routeCache = distance.NewRedisRouteCache(redisClient, cfg.Distance.CacheTTL)
	default:
		routeCache = distance.NewMemoryRouteCacheSize(cfg.Distance.CacheTTL, cfg.Distance.CacheSize)
	}

	distanceSvc := distance.NewProvider(distance.Options{
		Cache:   routeCache,
		Timeout: cfg.Distance.Timeout,
		Logger:  logger,
		Metrics: metrics,
	}, estimators...)

	pricingSvc := pricing.NewDefaultService(identifier, distanceSvc, logger, metrics)
	locationSvc := location.NewService(selections, places, identifier)

	couponSvc := coupon.NewService(
		coupon.NewRedisLimiter(redisClient, cfg.Coupon.RateLimit, cfg.Coupon.RateWindow),
		coupon.NewStore(dbPool),
		logger,
	)

	paymentProxy := payment.NewProxy(payment.Config{
		APIKey:       cfg.Payment.APIKey,
		CustomersURL: cfg.Payment.CustomersURL,
		PaymentsURL:  cfg.Payment.PaymentsURL,
		Timeout:      cfg.Payment.Timeout,
	}, nil)

	mailer := reservation.NewGomailMailer(reservation.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
	})
	reservationSvc := reservation.NewService(mailer, reservation.Config{
		From:       cfg.SMTP.From,
		Operations: cfg.SMTP.Operations,
		Configured: cfg.SMTP.Configured(),
	}, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Pricing:        pricingSvc,
		Location:       locationSvc,
		Coupons:        couponSvc,
		Payment:        paymentProxy,
		Reservation:    reservationSvc,
		Metrics:        metrics,
		Logger:         logger,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "http shutdown", logging.Err(err))
		}
	}()

	logger.Info(ctx, "listening", logging.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
