// Package geocoding resolves coordinates to a short "Area, City" label through Nominatim.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/savioruz/turfics/pkg/geo"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/valyala/fasthttp"
)

//go:generate go run go.uber.org/mock/mockgen -source=geocoding.go -destination=mock/geocoding_mock.go -package=mock

const identifier = "geocoding - %s"

type Place struct {
	DisplayName string `json:"display_name"`
	Label       string `json:"label"`
}

type Geocoder interface {
	Reverse(ctx context.Context, p geo.Point) (Place, error)
}

type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

type Config struct {
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	CacheDuration int
}

type nominatim struct {
	cfg    Config
	doer   Doer
	cache  redis.IRedisCache
	logger logger.Interface
}

func New(cfg Config, cache redis.IRedisCache, l logger.Interface) Geocoder {
	return NewWithDoer(cfg, &fasthttp.Client{Name: cfg.UserAgent}, cache, l)
}

func NewWithDoer(cfg Config, doer Doer, cache redis.IRedisCache, l logger.Interface) Geocoder {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &nominatim{
		cfg:    cfg,
		doer:   doer,
		cache:  cache,
		logger: l,
	}
}

func (n *nominatim) Reverse(ctx context.Context, p geo.Point) (Place, error) {
	key := helper.BuildCacheKey("geocode", fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lng))

	var res Place
	if err := n.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	q := url.Values{
		"format": {"json"},
		"lat":    {strconv.FormatFloat(p.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(p.Lng, 'f', -1, 64)},
	}

	req.SetRequestURI(n.cfg.BaseURL + "/reverse?" + q.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(n.cfg.UserAgent)

	if err := n.doer.DoDeadline(req, resp, time.Now().Add(n.cfg.Timeout)); err != nil {
		n.logger.Warn(identifier, "reverse failed: "+err.Error())

		return Place{}, err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return Place{}, fmt.Errorf("geocoding - reverse: status %d", resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return Place{}, fmt.Errorf("geocoding - decode: %w", err)
	}

	res.Label = geo.SmartAddress(res.DisplayName)

	go func() {
		_ = n.cache.Save(context.WithoutCancel(ctx), key, res, n.cfg.CacheDuration)
	}()

	return res, nil
}
