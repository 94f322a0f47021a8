package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payflow/internal/adapter/http/dto"
	"github.com/iho/payflow/tests/testutil"
)

func TestBatchAPI_JSON(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	server := testutil.NewTestServer(t)

	resp := testutil.PostBatch(t, server, "", testutil.SampleBatch)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var batch dto.BatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&batch))

	assert.Len(t, batch.BatchID, 26)
	assert.Equal(t, 10, batch.Stats.Processed)
	assert.Equal(t, 9, batch.Stats.Applied)
	assert.Equal(t, 1, batch.Stats.Dropped["account_locked"])

	require.Len(t, batch.Accounts, 2)
	assert.Equal(t, "120.0000", batch.Accounts[0].Available)
	assert.False(t, batch.Accounts[0].Locked)
	assert.Equal(t, "100.0000", batch.Accounts[1].Available)
	assert.True(t, batch.Accounts[1].Locked)
}

func TestBatchAPI_CSV(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	server := testutil.NewTestServer(t)

	resp := testutil.PostBatch(t, server, "text/csv", testutil.SampleBatch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Len(t, resp.Header.Get("X-Batch-ID"), 26)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "client,available,held,total,locked", lines[0])
	assert.Equal(t, "1,120.0000,0.0000,120.0000,false", lines[1])
	assert.Equal(t, "2,100.0000,0.0000,100.0000,true", lines[2])
}

// TestBatchAPI_Isolation checks that consecutive batches share no
// state: the same stream yields the same result twice.
func TestBatchAPI_Isolation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	server := testutil.NewTestServer(t)

	for i := 0; i < 2; i++ {
		resp := testutil.PostBatch(t, server, "", testutil.SampleBatch)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var batch dto.BatchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&batch))
		assert.Equal(t, 9, batch.Stats.Applied, "run %d", i)
		require.Len(t, batch.Accounts, 2, "run %d", i)
		assert.Equal(t, "120.0000", batch.Accounts[0].Available, "run %d", i)
	}
}
