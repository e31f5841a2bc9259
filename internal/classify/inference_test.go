package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInference_Predict(t *testing.T) {
	var gotAuth, gotPath string
	var gotInputs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		var req inferenceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotInputs = req.Inputs
		_, _ = w.Write([]byte(`[[{"label":"negative","score":0.1},{"label":"POSITIVE","score":0.9}]]`))
	}))
	defer srv.Close()

	c := NewInference(srv.URL+"/models/", DefaultSentimentModel, "secret", srv.Client())
	labels, err := c.Predict(context.Background(), []string{"che bello"})
	require.NoError(t, err)

	assert.Equal(t, []string{"positive"}, labels)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "/models/"+DefaultSentimentModel, gotPath)
	assert.Equal(t, []string{"che bello"}, gotInputs)
}

func TestInference_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: `{"error":"loading"}`},
		{name: "bad json", status: http.StatusOK, body: `not json`},
		{name: "result count mismatch", status: http.StatusOK, body: `[]`},
		{name: "no candidates", status: http.StatusOK, body: `[[]]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewInference(srv.URL, "m", "", srv.Client()).Predict(context.Background(), []string{"x"})
			require.Error(t, err)
		})
	}
}
