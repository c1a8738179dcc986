package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	data, err := Download(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("body = %q, want %q", data, "image-bytes")
	}
}

func TestDownloadRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	body, err := download(context.Background(), srv)
	if err != nil {
		t.Fatalf("Download after retries: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestDownloadDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := download(context.Background(), srv); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (no retry on 4xx)", calls.Load())
	}
}

// download fetches from a test server with fast backoff.
func download(ctx context.Context, srv *httptest.Server) ([]byte, error) {
	var body []byte
	err := Retry(ctx, 3, time.Millisecond, func() error {
		resp, err := srv.Client().Get(srv.URL)
		if err != nil {
			return &RetryableError{Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return &RetryableError{Err: errStatus(resp.StatusCode)}
		}
		if resp.StatusCode != http.StatusOK {
			return errStatus(resp.StatusCode)
		}
		buf := make([]byte, 64)
		n, _ := resp.Body.Read(buf)
		body = buf[:n]
		return nil
	})
	return body, err
}

type errStatus int

func (e errStatus) Error() string { return http.StatusText(int(e)) }

func TestRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 5, time.Millisecond, func() error {
		calls++
		return errStatus(http.StatusBadRequest)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Second, func() error {
		return &RetryableError{Err: errStatus(http.StatusBadGateway)}
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
