package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"carhive/config"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// googleResponse is the slice of the Google Geocoding API response we use.
type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GoogleGeocoder resolves addresses through the Google Geocoding API.
type GoogleGeocoder struct {
	Client  *http.Client
	BaseURL string
}

// NewGoogleGeocoder creates a Geocoder backed by the Google Geocoding API.
func NewGoogleGeocoder() Geocoder {
	return &GoogleGeocoder{Client: http.DefaultClient, BaseURL: googleGeocodeURL}
}

// Resolve looks up the address and returns the first candidate location.
// "ZERO_RESULTS" surfaces as ErrUnresolvable; every other non-OK status is a
// backend failure.
func (g *GoogleGeocoder) Resolve(ctx context.Context, address string) (Coordinates, error) {
	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		return Coordinates{}, fmt.Errorf("geocode: GOOGLE_API_KEY is not configured")
	}

	base := g.BaseURL
	if base == "" {
		base = googleGeocodeURL
	}
	reqURL := fmt.Sprintf("%s?address=%s&key=%s", base, url.QueryEscape(address), apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: failed to build request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Coordinates{}, fmt.Errorf("geocode: failed to decode response: %w", err)
	}

	if decoded.Status == "ZERO_RESULTS" || len(decoded.Results) == 0 {
		return Coordinates{}, fmt.Errorf("geocode %q: %w", address, ErrUnresolvable)
	}
	if decoded.Status != "OK" {
		return Coordinates{}, fmt.Errorf("geocode: unexpected status %s", decoded.Status)
	}

	loc := decoded.Results[0].Geometry.Location
	return Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
