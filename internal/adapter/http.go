package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	retryWaitTime    = 100 * time.Millisecond
	retryMaxWaitTime = time.Second
)

type httpURLChecker struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPURLChecker constructs a resty backed [URLChecker]. Every probe is
// bounded by adapterCfg.URLCheckTimeout and retried adapterCfg.URLCheckRetries
// times on transport errors and 5xx answers.
func NewHTTPURLChecker(adapterCfg config.Adapter, logger *logger.Logger) URLChecker {
	client := utils.NewHTTPClient(utils.DefaultUserAgent)
	client.
		SetTimeout(adapterCfg.URLCheckTimeout).
		SetRetryCount(adapterCfg.URLCheckRetries).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || (resp != nil && resp.StatusCode() >= http.StatusInternalServerError)
		})

	return &httpURLChecker{client: client, logger: logger}
}

// Check implements [URLChecker]. The response body is never read.
func (h *httpURLChecker) Check(ctx context.Context, rawURL string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if resp != nil && resp.RawBody() != nil {
		defer resp.RawBody().Close()
	}
	if err != nil {
		h.logger.Debug().Str("func", "*httpURLChecker.Check").Err(err).Str("url", rawURL).Msg("video url unreachable")
		return fmt.Errorf("%w: %w", ErrURLUnreachable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpURLChecker.Check").Int("status", resp.StatusCode()).Str("url", rawURL).Msg("video url answered with failure")
		return err
	}

	return nil
}

type noopURLChecker struct{}

// NewNoopURLChecker returns a [URLChecker] that accepts every URL.
func NewNoopURLChecker() URLChecker {
	return noopURLChecker{}
}

func (noopURLChecker) Check(context.Context, string) error {
	return nil
}

// NewURLChecker picks the implementation matching adapterCfg.
func NewURLChecker(adapterCfg config.Adapter, logger *logger.Logger) URLChecker {
	if adapterCfg.URLCheckDisabled {
		logger.Warn().Msg("video url liveness check is disabled")
		return NewNoopURLChecker()
	}

	return NewHTTPURLChecker(adapterCfg, logger)
}
