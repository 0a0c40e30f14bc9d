// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHub struct {
	err error
}

func (f *fakeHub) RunWithContext(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestWebSocketHubServiceDelegates(t *testing.T) {
	wantErr := errors.New("hub failed")
	svc := NewWebSocketHubService(&fakeHub{err: wantErr})

	assert.Equal(t, wantErr, svc.Serve(context.Background()))
	assert.Equal(t, "websocket-hub", svc.String())
}

func TestWebSocketHubServiceStopsOnCancel(t *testing.T) {
	svc := NewWebSocketHubService(&fakeHub{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, errors.Is(svc.Serve(ctx), context.Canceled))
}
