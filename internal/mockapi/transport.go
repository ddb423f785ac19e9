package mockapi

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"time"
)

// BaseURL is the origin used for requests sent through a Transport.
const BaseURL = "http://portal.internal"

// Transport serves outgoing requests with an in-process handler instead of
// the network. Every round trip waits the configured latency first.
type Transport struct {
	handler http.Handler
	latency time.Duration
}

func NewTransport(handler http.Handler, latency time.Duration) *Transport {
	return &Transport{handler: handler, latency: latency}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if t.latency > 0 {
		timer := time.NewTimer(t.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			if req.Body != nil {
				req.Body.Close()
			}
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	in := req.Clone(ctx)
	if in.Body == nil {
		in.Body = http.NoBody
	}
	if in.RemoteAddr == "" {
		in.RemoteAddr = "in-process"
	}

	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, in)
	in.Body.Close()

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// Client returns an HTTP client with its own cookie jar that talks to the
// handler through t.
func (t *Transport) Client() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{Transport: t, Jar: jar}
}
