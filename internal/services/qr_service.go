package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	mem "innkeep/pkg/memcache"
	"innkeep/pkg/utils"
)

const (
	QRDefaultSize = 256
	QRMinSize     = 64
	QRMaxSize     = 1024
	qrMaxData     = 2048
	qrMaxBody     = 2 << 20
)

type QRConfig struct {
	ProviderURL string
	TTL         time.Duration
}

type QRImage struct {
	Data        []byte
	ContentType string
	Cached      bool
}

type QRServiceInterface interface {
	Render(ctx context.Context, data string, size int) (*QRImage, error)
}

type QRService struct {
	httpClient *http.Client
	cache      mem.ImageStore
	cfg        QRConfig
	log        *zap.Logger
}

func NewQRService(httpClient *http.Client, cache mem.ImageStore, cfg QRConfig, log *zap.Logger) QRServiceInterface {
	return &QRService{
		httpClient: httpClient,
		cache:      cache,
		cfg:        cfg,
		log:        log,
	}
}

// ClampQRSize maps a missing or out-of-range size onto the supported range.
func ClampQRSize(size int) int {
	switch {
	case size <= 0:
		return QRDefaultSize
	case size < QRMinSize:
		return QRMinSize
	case size > QRMaxSize:
		return QRMaxSize
	default:
		return size
	}
}

func (q *QRService) Render(ctx context.Context, data string, size int) (*QRImage, error) {
	if strings.TrimSpace(data) == "" {
		return nil, utils.InvalidInput("data is required")
	}
	if len(data) > qrMaxData {
		return nil, utils.InvalidInput("data is too long")
	}
	size = ClampQRSize(size)

	key := qrCacheKey(data, size)
	if img, ok := q.cache.Get(ctx, key); ok {
		return &QRImage{Data: img, ContentType: "image/png", Cached: true}, nil
	}

	img, err := q.fetch(ctx, data, size)
	if err != nil {
		return nil, err
	}

	q.cache.Set(ctx, key, img, q.cfg.TTL)
	return &QRImage{Data: img, ContentType: "image/png"}, nil
}

func (q *QRService) fetch(ctx context.Context, data string, size int) ([]byte, error) {
	u, err := url.Parse(q.cfg.ProviderURL)
	if err != nil {
		return nil, fmt.Errorf("qr provider url: %w", err)
	}
	query := u.Query()
	query.Set("data", data)
	query.Set("size", strconv.Itoa(size)+"x"+strconv.Itoa(size))
	query.Set("format", "png")
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		q.log.Warn("qr provider returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: qr provider returned %d", utils.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, qrMaxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	if len(body) > qrMaxBody {
		return nil, fmt.Errorf("%w: qr image exceeds %d bytes", utils.ErrUpstream, qrMaxBody)
	}
	return body, nil
}

func qrCacheKey(data string, size int) string {
	sum := sha256.Sum256([]byte(data))
	return strconv.Itoa(size) + ":" + hex.EncodeToString(sum[:])
}
