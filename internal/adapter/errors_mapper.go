package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := http.StatusText(resp.StatusCode())
	if status == "" {
		status = "unknown status"
	}

	return fmt.Errorf("%w: http %d %s", ErrURLNotSuccessful, resp.StatusCode(), status)
}
