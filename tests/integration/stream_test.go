package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payflow/internal/adapter/csvio"
	"github.com/iho/payflow/internal/adapter/repository/memory"
	"github.com/iho/payflow/internal/usecase"
	"github.com/iho/payflow/tests/testutil"
)

// TestStreamEndToEnd drives the full CLI path: CSV feed through the
// engine into a CSV snapshot.
func TestStreamEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	feed := csvio.NewFeed(strings.NewReader(testutil.SampleBatch))
	accounts := memory.NewAccountStore()
	ledger := memory.NewDepositLedger()
	processor := usecase.NewProcessorUseCase(accounts, ledger)

	stats, err := processor.Run(context.Background(), feed)
	require.NoError(t, err)

	assert.Equal(t, 10, stats.Processed)
	assert.Equal(t, 9, stats.Applied)
	assert.Equal(t, 1, stats.Dropped["account_locked"])
	assert.Zero(t, feed.Skipped())

	var out bytes.Buffer
	snapshot := csvio.NewSnapshot(&out)
	require.NoError(t, processor.WriteSnapshot(snapshot))
	require.NoError(t, snapshot.Flush())

	want := "client,available,held,total,locked\n" +
		"1,120.0000,0.0000,120.0000,false\n" +
		"2,100.0000,0.0000,100.0000,true\n"
	assert.Equal(t, want, out.String())
}

// TestStreamSurvivesGarbage mixes malformed rows into a valid stream
// and checks the engine never aborts.
func TestStreamSurvivesGarbage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	input := `type,client,tx,amount
deposit,1,1,100.0
this is not a transaction
deposit,one,2,50.0
withdrawal,1,3,25.0
dispute,1,999
`

	feed := csvio.NewFeed(strings.NewReader(input))
	accounts := memory.NewAccountStore()
	processor := usecase.NewProcessorUseCase(accounts, memory.NewDepositLedger())

	stats, err := processor.Run(context.Background(), feed)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 2, stats.Applied)
	assert.Equal(t, 1, stats.Dropped["unknown_transaction"])
	assert.Equal(t, 2, feed.Skipped())

	acc, ok := accounts.Get(1)
	require.True(t, ok)
	assert.Equal(t, "75.0000", acc.Available.StringFixed(4))
}
