// Package routing asks an OSRM server for driving distances between two points.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/geo"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/valyala/fasthttp"
)

//go:generate go run go.uber.org/mock/mockgen -source=routing.go -destination=mock/routing_mock.go -package=mock

const identifier = "routing - %s"

var ErrNoRoute = errors.New("no route found")

type Router interface {
	// Distance returns the driving distance in kilometers.
	Distance(ctx context.Context, from, to geo.Point) (float64, error)
}

type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	CacheDuration int
}

type osrm struct {
	cfg    Config
	doer   Doer
	cache  redis.IRedisCache
	logger logger.Interface
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

func New(cfg Config, cache redis.IRedisCache, l logger.Interface) Router {
	return NewWithDoer(cfg, &fasthttp.Client{Name: "turfics-gateway"}, cache, l)
}

func NewWithDoer(cfg Config, doer Doer, cache redis.IRedisCache, l logger.Interface) Router {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &osrm{
		cfg:    cfg,
		doer:   doer,
		cache:  cache,
		logger: l,
	}
}

func cacheKey(from, to geo.Point) string {
	return helper.BuildCacheKey("route", fmt.Sprintf("%.5f,%.5f;%.5f,%.5f", from.Lat, from.Lng, to.Lat, to.Lng))
}

func (o *osrm) Distance(ctx context.Context, from, to geo.Point) (float64, error) {
	key := cacheKey(from, to)

	var km float64
	if err := o.cache.Get(ctx, key, &km); err == nil {
		return km, nil
	}

	km, err := o.fetch(ctx, from, to)
	if err != nil {
		return 0, err
	}

	go func() {
		_ = o.cache.Save(context.WithoutCancel(ctx), key, km, o.cfg.CacheDuration)
	}()

	return km, nil
}

func (o *osrm) fetch(ctx context.Context, from, to geo.Point) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	// OSRM takes lng,lat pairs.
	req.SetRequestURI(fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		o.cfg.BaseURL, from.Lng, from.Lat, to.Lng, to.Lat))
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(o.cfg.Timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}

	if err := o.doer.DoDeadline(req, resp, deadline); err != nil {
		o.logger.Warn(identifier, "request failed: "+err.Error())

		return 0, err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return 0, fmt.Errorf("%w: status %d", ErrNoRoute, resp.StatusCode())
	}

	var body routeResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("routing - decode: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return 0, fmt.Errorf("%w: code %s", ErrNoRoute, body.Code)
	}

	return body.Routes[0].Distance / constant.MetersPerKilometer, nil
}
