package main

import (
	"time"

	"github.com/sells-group/campus-imagery-cli/internal/config"
	"github.com/sells-group/campus-imagery-cli/pkg/geocode"
	"github.com/sells-group/campus-imagery-cli/pkg/streetview"
)

// newClients builds the Google API clients from configuration.
func newClients(c *config.Config) (geocode.Client, streetview.Client) {
	timeout := time.Duration(c.Google.TimeoutSecs) * time.Second

	g := geocode.NewClient(c.Google.APIKey,
		geocode.WithBaseURL(c.Google.GeocodeURL),
		geocode.WithTimeout(timeout),
	)
	sv := streetview.NewClient(c.Google.APIKey,
		streetview.WithBaseURL(c.Google.StreetViewURL),
		streetview.WithTimeout(timeout),
	)
	return g, sv
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
