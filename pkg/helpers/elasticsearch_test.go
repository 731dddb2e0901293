package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCluster(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"version":{"number":"8.19.0"}}`))
	}))
}

func TestNewESClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	es, err := NewESClient(ctx, nil, "", "")
	require.NoError(t, err)
	assert.Nil(t, es)

	healthy := fakeCluster(http.StatusOK)
	defer healthy.Close()
	es, err = NewESClient(ctx, []string{healthy.URL}, "", "")
	require.NoError(t, err)
	assert.NotNil(t, es)

	broken := fakeCluster(http.StatusServiceUnavailable)
	defer broken.Close()
	_, err = NewESClient(ctx, []string{broken.URL}, "", "")
	assert.Error(t, err)
}
