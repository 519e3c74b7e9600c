package faceapi

import "net/http"

// SubscriptionKeyHeader carries the service key on every request.
const SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

// apiKeyTransport wraps an http.RoundTripper to attach the subscription key.
type apiKeyTransport struct {
	base http.RoundTripper
	key  string
}

// RoundTrip implements http.RoundTripper.
func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set(SubscriptionKeyHeader, t.key)
	return t.base.RoundTrip(clone)
}

// withAPIKey returns a shallow copy of hc whose transport attaches key.
func withAPIKey(hc *http.Client, key string) *http.Client {
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = &apiKeyTransport{base: base, key: key}
	return &wrapped
}
