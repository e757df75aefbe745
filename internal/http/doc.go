// Package http provides the HTTP client used to talk to the NetEase
// Cloud Music API and to download cover art.
//
// The client sends a fixed set of headers with every request and offers a
// blocking retry loop for endpoints that intermittently answer with a
// non-200 status:
//
//	client := http.NewClient(http.Options{
//	    RetryCount: 10,
//	    RetryDelay: time.Second,
//	})
//	body, err := client.GetWithRetry(ctx, url)
//	if errors.Is(err, http.ErrRetriesExhausted) {
//	    // 11 requests failed
//	}
//
// Only the status code triggers a retry; a transport failure or an
// unparsable body is reported to the caller immediately.
package http
