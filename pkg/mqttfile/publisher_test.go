package mqttfile_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/precond/pkg/errkind"
	"github.com/dmitrymomot/precond/pkg/logger"
	"github.com/dmitrymomot/precond/pkg/mqttfile"
)

func TestPublishFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("publishes file contents", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "send.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello broker"), 0o600))

		client := newFakeClient()
		reg := prometheus.NewRegistry()
		metrics, err := mqttfile.NewMetrics(reg)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

		pub := mqttfile.NewPublisher(client, mqttfile.DefaultConfig(),
			mqttfile.WithPublisherLogger(log),
			mqttfile.WithPublisherMetrics(metrics),
		)
		require.NoError(t, pub.PublishFile(ctx, path))

		require.Len(t, client.published, 1)
		got := client.published[0]
		assert.Equal(t, "precond/files", got.topic)
		assert.Equal(t, byte(1), got.qos)
		assert.True(t, got.retained)
		assert.Equal(t, []byte("hello broker"), got.payload)

		assert.Equal(t, 1, testutil.CollectAndCount(reg, "precond_mqttfile_messages_total"))
		assert.Equal(t, 0, testutil.CollectAndCount(reg, "precond_mqttfile_failures_total"))
		assert.Contains(t, buf.String(), "Entering method mqttfile.Publisher.PublishFile.")
		assert.Contains(t, buf.String(), "file published")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		pub := mqttfile.NewPublisher(client, mqttfile.DefaultConfig())

		err := pub.PublishFile(ctx, filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		var argErr *errkind.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, client.published)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		pub := mqttfile.NewPublisher(client, mqttfile.DefaultConfig())

		err := pub.PublishFile(ctx, t.TempDir())
		require.Error(t, err)
		assert.Equal(t, "path should point to an existing file", err.Error())
		assert.Empty(t, client.published)
	})

	t.Run("blank path", func(t *testing.T) {
		t.Parallel()
		pub := mqttfile.NewPublisher(newFakeClient(), mqttfile.DefaultConfig())
		err := pub.PublishFile(ctx, " ")
		require.Error(t, err)
		assert.Equal(t, "path should not be empty (trimmed)", err.Error())
	})
}

func TestPublish(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("broker error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("not authorized")
		client := newFakeClient()
		client.token = func() mqtt.Token { return doneToken(boom) }

		reg := prometheus.NewRegistry()
		metrics, err := mqttfile.NewMetrics(reg)
		require.NoError(t, err)

		pub := mqttfile.NewPublisher(client, mqttfile.DefaultConfig(), mqttfile.WithPublisherMetrics(metrics))
		err = pub.Publish(ctx, []byte("x"))
		assert.ErrorIs(t, err, mqttfile.ErrPublish)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, testutil.CollectAndCount(reg, "precond_mqttfile_failures_total"))
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		client.token = func() mqtt.Token { return pendingToken() }

		cfg := mqttfile.DefaultConfig()
		cfg.OperationTimeout = 10 * time.Millisecond
		err := mqttfile.NewPublisher(client, cfg).Publish(ctx, []byte("x"))
		assert.ErrorIs(t, err, mqttfile.ErrTimeout)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		client := newFakeClient()
		client.token = func() mqtt.Token { return pendingToken() }

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := mqttfile.NewPublisher(client, mqttfile.DefaultConfig()).Publish(cctx, []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	_, err := mqttfile.NewMetrics(reg)
	require.NoError(t, err)
	_, err = mqttfile.NewMetrics(reg)
	assert.Error(t, err)
}
