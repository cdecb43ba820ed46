package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// OSRMEstimator queries an OSRM routing server's /route/v1/driving endpoint.
type OSRMEstimator struct {
	geocoder *Geocoder
	baseURL  string
	client   *http.Client
}

func NewOSRMEstimator(geocoder *Geocoder, baseURL string, client *http.Client) *OSRMEstimator {
	if client == nil {
		client = http.DefaultClient
	}
	return &OSRMEstimator{geocoder: geocoder, baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *OSRMEstimator) Source() Source { return SourceOSRM }

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

func (e *OSRMEstimator) Estimate(ctx context.Context, origin, destination string) (Estimate, error) {
	o, d, err := e.geocoder.locatePair(ctx, origin, destination)
	if err != nil {
		return Estimate{}, err
	}
	// OSRM takes lng,lat pairs.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false", e.baseURL, o.Lng, o.Lat, d.Lng, d.Lat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Estimate{}, err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return Estimate{}, fmt.Errorf("osrm request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Estimate{}, fmt.Errorf("osrm status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Estimate{}, fmt.Errorf("osrm decode: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return Estimate{}, fmt.Errorf("osrm: no route (code %q)", body.Code)
	}
	r := body.Routes[0]
	return Estimate{
		DistanceKm: r.Distance / 1000,
		Minutes:    int(r.Duration/60 + 0.5),
		Source:     SourceOSRM,
	}, nil
}
