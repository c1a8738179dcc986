// Package httputil provides HTTP utilities for the generative AI clients.
//
// # Overview
//
// This package provides infrastructure shared by the image downloader and any
// other direct HTTP consumers:
//
//   - [Download]: Fetch a URL with retry, size limits, and status classification
//   - [Retry]: Automatic retry with exponential backoff
//
// # Retry
//
// [Retry] re-attempts operations that fail with a [RetryableError]:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Other failures (4xx, malformed URLs) return immediately.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Max attempts: 3
//   - Base backoff: 1 second (doubling each retry)
//   - Max download size: 16 MiB
package httputil
