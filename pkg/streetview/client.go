// Package streetview talks to the Google Street View Static API.
package streetview

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/streetview"

	metadataSize = "400x400"
	imageSize    = "640x640"

	// StatusZeroResults is the metadata status for a location without imagery.
	StatusZeroResults = "ZERO_RESULTS"
)

// Client performs Street View Static API operations. Locations are passed
// pre-formatted as "<lat>,<lng>".
type Client interface {
	Metadata(ctx context.Context, location string) (*Metadata, error)
	Image(ctx context.Context, location string) (*Image, error)
}

// Metadata is the response from the metadata endpoint.
type Metadata struct {
	Status       string    `json:"status"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	PanoID       string    `json:"pano_id,omitempty"`
	Date         string    `json:"date,omitempty"`
	Copyright    string    `json:"copyright,omitempty"`
	Location     *Location `json:"location,omitempty"`

	// hasErrorKey records an error_message key even when its value is null.
	hasErrorKey bool
}

// UnmarshalJSON decodes the metadata and notes whether error_message was present.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	type plain Metadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*m = Metadata(p)
	_, m.hasErrorKey = keys["error_message"]
	return nil
}

// Location is the position of the panorama that metadata resolved to.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HasImagery reports whether the metadata describes usable imagery: the
// status is not ZERO_RESULTS and no error_message key was present.
func (m *Metadata) HasImagery() bool {
	return m.Status != StatusZeroResults && m.ErrorMessage == nil && !m.hasErrorKey
}

// Image is a raw image response. Body is returned whatever the status code.
type Image struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the API answered with HTTP 200.
func (i *Image) OK() bool {
	return i.StatusCode == http.StatusOK
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Street View Static API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// requestURL builds "<base><path>?size=..&location=..&key=..". The location
// is left unescaped so the comma reaches the API verbatim.
func (c *httpClient) requestURL(path, size, location string) string {
	return c.baseURL + path + "?size=" + size + "&location=" + location + "&key=" + url.QueryEscape(c.apiKey)
}

func (c *httpClient) get(ctx context.Context, rawURL string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, eris.Wrap(err, "streetview: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, eris.Wrap(err, "streetview: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, eris.Wrap(err, "streetview: read response")
	}
	return resp, body, nil
}

// Metadata implements Client. The body is decoded regardless of HTTP status
// since the API reports failures through status and error_message.
func (c *httpClient) Metadata(ctx context.Context, location string) (*Metadata, error) {
	_, body, err := c.get(ctx, c.requestURL("/metadata", metadataSize, location))
	if err != nil {
		return nil, err
	}

	var result Metadata
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "streetview: unmarshal metadata")
	}
	return &result, nil
}

// Image implements Client.
func (c *httpClient) Image(ctx context.Context, location string) (*Image, error) {
	resp, body, err := c.get(ctx, c.requestURL("", imageSize, location))
	if err != nil {
		return nil, err
	}
	return &Image{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
