//go:build unit

package receipt_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/metrics"
	"reddog/internal/receipt"
	"reddog/internal/sidecar/localbinding"
	"reddog/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	storage, err := localbinding.New(dir)
	require.NoError(t, err)

	generator := receipt.NewGenerator(storage, metrics.NewRegistry(), slog.New(slog.DiscardHandler))
	summary := builder.NewOrderSummaryBuilder().Build()

	require.NoError(t, generator.Generate(context.Background(), summary))

	data, err := os.ReadFile(filepath.Join(dir, summary.OrderID.String()+".json"))
	require.NoError(t, err)

	var written order.OrderSummary
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, summary.OrderID, written.OrderID)
	assert.True(t, summary.OrderTotal.Equal(written.OrderTotal))
}

func TestOrderReceivedHandler(t *testing.T) {
	dir := t.TempDir()
	storage, err := localbinding.New(dir)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	generator := receipt.NewGenerator(storage, metrics.NewRegistry(), logger)
	handler := receipt.OrderReceivedHandler(generator, logger)

	t.Run("writes receipt for a valid event", func(t *testing.T) {
		summary := builder.NewOrderSummaryBuilder().Build()
		body, err := json.Marshal(summary)
		require.NoError(t, err)

		require.NoError(t, handler(context.Background(), body))
		assert.FileExists(t, filepath.Join(dir, summary.OrderID.String()+".json"))
	})

	t.Run("drops malformed payloads without error", func(t *testing.T) {
		assert.NoError(t, handler(context.Background(), []byte("{not json")),
			"malformed events must not requeue forever")
	})
}
