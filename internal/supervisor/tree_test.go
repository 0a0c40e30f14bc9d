// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixamado/cageography/internal/logging"
)

// blockingService runs until its context is canceled and signals startup.
type blockingService struct {
	started chan struct{}
}

func newBlockingService() *blockingService {
	return &blockingService{started: make(chan struct{})}
}

func (s *blockingService) Serve(ctx context.Context) error {
	close(s.started)
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingService) String() string { return "blocking-service" }

func TestDefaultTreeConfig(t *testing.T) {
	cfg := DefaultTreeConfig()
	assert.Equal(t, 5.0, cfg.FailureThreshold)
	assert.Equal(t, 30.0, cfg.FailureDecay)
	assert.Equal(t, 15*time.Second, cfg.FailureBackoff)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestNewTreeAppliesDefaults(t *testing.T) {
	tree, err := NewTree(logging.NewSlogLogger(), TreeConfig{})
	require.NoError(t, err)
	require.NotNil(t, tree.Root())

	assert.Equal(t, 5.0, tree.config.FailureThreshold)
	assert.Equal(t, 10*time.Second, tree.config.ShutdownTimeout)
}

func TestTreeServeAndShutdown(t *testing.T) {
	tree, err := NewTree(logging.NewSlogLogger(), DefaultTreeConfig())
	require.NoError(t, err)

	messaging := newBlockingService()
	api := newBlockingService()
	tree.AddMessagingService(messaging)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	select {
	case <-messaging.started:
	case <-time.After(2 * time.Second):
		t.Fatal("messaging service did not start")
	}
	select {
	case <-api.started:
	case <-time.After(2 * time.Second):
		t.Fatal("api service did not start")
	}

	cancel()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor tree did not stop")
	}
}
