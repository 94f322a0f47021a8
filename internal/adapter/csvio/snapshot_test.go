package csvio

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/payflow/internal/domain"
)

func TestSnapshot_WritesFixedPrecisionRows(t *testing.T) {
	var buf bytes.Buffer
	snapshot := NewSnapshot(&buf)

	acc := domain.NewAccount(1)
	acc.Available = decimal.RequireFromString("1.5")
	acc.Held = decimal.RequireFromString("0.25")

	locked := domain.NewAccount(2)
	locked.Available = decimal.RequireFromString("-100")
	locked.Locked = true

	require.NoError(t, snapshot.WriteAccount(acc))
	require.NoError(t, snapshot.WriteAccount(locked))
	require.NoError(t, snapshot.Flush())

	want := "client,available,held,total,locked\n" +
		"1,1.5000,0.2500,1.7500,false\n" +
		"2,-100.0000,0.0000,-100.0000,true\n"
	assert.Equal(t, want, buf.String())
}

func TestSnapshot_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	snapshot := NewSnapshot(&buf)

	require.NoError(t, snapshot.Flush())

	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
