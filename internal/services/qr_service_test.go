package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mem "innkeep/pkg/memcache"
	"innkeep/pkg/utils"
)

func TestClampQRSize(t *testing.T) {
	assert.Equal(t, QRDefaultSize, ClampQRSize(0))
	assert.Equal(t, QRMinSize, ClampQRSize(10))
	assert.Equal(t, QRMaxSize, ClampQRSize(5000))
	assert.Equal(t, 300, ClampQRSize(300))
}

func TestRenderProxiesAndCaches(t *testing.T) {
	var hits atomic.Int32
	png := []byte{0x89, 'P', 'N', 'G'}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "https://example.com/checkin/abc", r.URL.Query().Get("data"))
		assert.Equal(t, "128x128", r.URL.Query().Get("size"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer upstream.Close()

	svc := NewQRService(upstream.Client(), mem.NewTTLImages(8), QRConfig{
		ProviderURL: upstream.URL,
		TTL:         time.Minute,
	}, zap.NewNop())

	img, err := svc.Render(context.Background(), "https://example.com/checkin/abc", 128)
	require.NoError(t, err)
	assert.Equal(t, png, img.Data)
	assert.False(t, img.Cached)

	img, err = svc.Render(context.Background(), "https://example.com/checkin/abc", 128)
	require.NoError(t, err)
	assert.True(t, img.Cached)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRenderRejectsEmptyData(t *testing.T) {
	svc := NewQRService(http.DefaultClient, mem.NewTTLImages(1), QRConfig{}, zap.NewNop())
	_, err := svc.Render(context.Background(), "  ", 0)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRenderUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	cache := mem.NewTTLImages(8)
	svc := NewQRService(upstream.Client(), cache, QRConfig{ProviderURL: upstream.URL, TTL: time.Minute}, zap.NewNop())

	_, err := svc.Render(context.Background(), "hello", 0)
	assert.ErrorIs(t, err, utils.ErrUpstream)
	assert.Zero(t, cache.Len())
}

func TestRenderRejectsOversizedImage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(make([]byte, qrMaxBody+1))
	}))
	defer upstream.Close()

	cache := mem.NewTTLImages(8)
	svc := NewQRService(upstream.Client(), cache, QRConfig{ProviderURL: upstream.URL, TTL: time.Minute}, zap.NewNop())

	_, err := svc.Render(context.Background(), "hello", 0)
	assert.ErrorIs(t, err, utils.ErrUpstream)
	assert.Zero(t, cache.Len())
}

func TestRenderAcceptsImageAtLimit(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, qrMaxBody))
	}))
	defer upstream.Close()

	svc := NewQRService(upstream.Client(), mem.NewTTLImages(8), QRConfig{ProviderURL: upstream.URL, TTL: time.Minute}, zap.NewNop())

	img, err := svc.Render(context.Background(), "hello", 0)
	require.NoError(t, err)
	assert.Len(t, img.Data, qrMaxBody)
}
