// README: Command-line quote; resolves a trip price locally with the same engine the API uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"transfer/internal/infra"
	"transfer/internal/logging"
	gmaps "transfer/internal/maps"
	"transfer/internal/modules/distance"
	"transfer/internal/modules/location"
	"transfer/internal/modules/pricing"
)

func main() {
	origin := flag.String("origin", "", "pickup address or CEP")
	destination := flag.String("destination", "", "drop-off address or CEP")
	category := flag.String("category", "", "vehicle category (empty quotes every category)")
	osrm := flag.String("osrm", os.Getenv("TRANSFER_OSRM_BASE_URL"), "OSRM base URL (empty skips OSRM)")
	timeout := flag.Duration("timeout", distance.DefaultTimeout, "per-estimator timeout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *origin == "" || *destination == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, err := newEngine(*osrm, *timeout, logger)
	if err != nil {
		log.Fatal(err)
	}

	var quotes []pricing.TripQuote
	if *category != "" {
		c, err := pricing.ParseCategory(*category)
		if err != nil {
			log.Fatalf("%s: %v", *category, err)
		}
		q, err := svc.ResolvePrice(ctx, *origin, *destination, c)
		if err != nil {
			log.Fatal(err)
		}
		quotes = append(quotes, q)
	} else {
		quotes, err = svc.QuoteAll(ctx, *origin, *destination)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("%s -> %s\n", *origin, *destination)
	if r, ok := location.DefaultIdentifier().Identify(*origin); ok {
		fmt.Printf("  origin region:      %s\n", r.Name)
	}
	if r, ok := location.DefaultIdentifier().Identify(*destination); ok {
		fmt.Printf("  destination region: %s\n", r.Name)
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPRICE\tSTRATEGY\tKM\tMIN\tSOURCE")
	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%d\t%s\n",
			q.Category, q.FinalPrice, q.Strategy, q.DistanceKm, q.EstimatedMinutes, q.Source)
	}
	_ = tw.Flush()
}

// newEngine builds the pricing chain without Redis or Postgres; Google Maps is
// used when TRANSFER_MAPS_API_KEY is set.
func newEngine(osrmURL string, timeout time.Duration, logger logging.Logger) (*pricing.Service, error) {
	mapsClient, err := infra.NewMaps(os.Getenv("TRANSFER_MAPS_API_KEY"))
	if err != nil {
		return nil, err
	}

	var (
		geocodeAPI distance.GeocodeAPI
		estimators []distance.Estimator
	)
	if mapsClient != nil {
		routeSvc := gmaps.NewRouteService(mapsClient)
		geocodeAPI = routeSvc
		estimators = append(estimators,
			distance.NewDirectionsEstimator(routeSvc),
			distance.NewMatrixEstimator(routeSvc),
		)
	}
	geocoder := distance.NewGeocoder(nil, geocodeAPI)
	if osrmURL != "" {
		estimators = append(estimators, distance.NewOSRMEstimator(geocoder, osrmURL, nil))
	}
	estimators = append(estimators, distance.NewHaversineEstimator(geocoder))

	provider := distance.NewProvider(distance.Options{
		Cache:   distance.NewMemoryRouteCache(0),
		Timeout: timeout,
		Logger:  logger,
	}, estimators...)

	return pricing.NewDefaultService(location.DefaultIdentifier(), provider, logger, nil), nil
}
