// Package geocode looks up places through the Google Geocoding API.
package geocode

import (
	"context"
	"net/http"
	"time"
)

// Client geocodes free-text addresses.
type Client interface {
	// Geocode returns the decoded response for address. A non-200 status is
	// an error; an empty result set is not.
	Geocode(ctx context.Context, address string) (*Response, error)
}

// Response is the JSON body returned by the Geocoding API.
type Response struct {
	Results      []Result `json:"results"`
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Result is a single geocoding match.
type Result struct {
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
	Geometry         Geometry `json:"geometry"`
}

// Geometry holds the match's point location and recommended viewport.
type Geometry struct {
	Location     LatLng   `json:"location"`
	LocationType string   `json:"location_type"`
	Viewport     Viewport `json:"viewport"`
}

// Viewport is the recommended display rectangle for a result.
type Viewport struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

// LatLng is a coordinate as encoded by the API.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Option configures the client.
type Option func(*geocoder)

// WithBaseURL overrides the Geocoding endpoint.
func WithBaseURL(url string) Option {
	return func(g *geocoder) {
		g.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *geocoder) {
		g.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(g *geocoder) {
		if d > 0 {
			g.httpClient.Timeout = d
		}
	}
}

type geocoder struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a Geocoding API client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) Client {
	g := &geocoder{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    googleGeocodeURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
