// Package testutil provides shared fixtures for the integration suite.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/payflow/internal/adapter/http"
	"github.com/iho/payflow/internal/adapter/http/handler"
	"github.com/iho/payflow/internal/adapter/repository/memory"
)

// SampleBatch is a canonical transaction stream exercising every record
// type: client 1 ends clean, client 2 ends charged back and locked.
const SampleBatch = `type,client,tx,amount
deposit,1,1,100.0
deposit,2,2,200.0
deposit,1,3,50.0
withdrawal,1,4,30.0
dispute,1,1
resolve,1,1
deposit,2,5,100.0
dispute,2,2
chargeback,2,2
deposit,2,6,50.0
`

// NewTestServer wires the full HTTP stack over fresh in-memory stores
// and returns a running test server, closed on test cleanup.
func NewTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	batchHandler := handler.NewBatchHandler(memory.NewULIDGenerator(), nil, zerolog.Nop(), 1<<20)
	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		BatchHandler:  batchHandler,
		HealthHandler: handler.NewHealthHandler(),
		Logger:        zerolog.Nop(),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// PostBatch uploads a CSV batch and returns the response. The body is
// closed on test cleanup.
func PostBatch(t *testing.T, server *httptest.Server, accept, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/batches", strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "text/csv")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
