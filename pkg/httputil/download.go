package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxDownloadSize caps downloaded payloads. Generated illustrations are
// typically 1-3 MiB; anything larger indicates a misbehaving source.
const MaxDownloadSize = 16 << 20

// DefaultTimeout bounds a single download attempt.
const DefaultTimeout = 30 * time.Second

// Download fetches url and returns the response body.
//
// Transient failures (network errors, 5xx, 429) are retried up to 3 times
// with exponential backoff. Non-2xx responses outside that set fail
// immediately. The body is read fully with a size cap of [MaxDownloadSize].
//
// If client is nil, a client with [DefaultTimeout] is used.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	var body []byte
	err := RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return &RetryableError{Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return &RetryableError{Err: fmt.Errorf("download %s: status %d", url, resp.StatusCode)}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("download %s: status %d", url, resp.StatusCode)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize+1))
		if err != nil {
			return &RetryableError{Err: err}
		}
		if len(data) > MaxDownloadSize {
			return fmt.Errorf("download %s: payload exceeds %d bytes", url, MaxDownloadSize)
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
