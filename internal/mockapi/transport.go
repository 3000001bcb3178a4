package mockapi

import (
	"net/http"
	"net/http/httptest"
)

// Transport is an http.RoundTripper that serves requests from the API without touching the network.
// Requests no route matches go to Fallback, or are answered with 404 when Fallback is nil.
type Transport struct {
	api      *API
	Fallback http.RoundTripper
}

func (api *API) Transport(fallback http.RoundTripper) *Transport {
	return &Transport{api: api, Fallback: fallback}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	recorder := httptest.NewRecorder()
	t.api.engine.ServeHTTP(recorder, req)

	if recorder.Header().Get(unmatchedHeader) != "" && t.Fallback != nil {
		return t.Fallback.RoundTrip(req)
	}

	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	resp := recorder.Result()
	resp.Header.Del(unmatchedHeader)
	resp.Request = req
	return resp, nil
}
