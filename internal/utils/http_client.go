package utils

import (
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultUserAgent is sent by outbound probes when the caller does not name one.
	DefaultUserAgent = "dashcam-catalog"

	maxRedirects = 5
)

// HTTPClient wraps resty.Client for outbound requests made by the catalogue,
// such as probing a submitted video URL.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself with
// userAgent and follows at most five redirects. An empty userAgent falls back
// to [DefaultUserAgent].
func NewHTTPClient(userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))

	return &HTTPClient{Client: client}
}
