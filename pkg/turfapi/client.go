// Package turfapi is the typed client of the turfics REST API.
package turfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/valyala/fasthttp"
)

const identifier = "turfapi - %s"

const defaultTimeout = 15 * time.Second

// Doer sends a single request. *fasthttp.Client satisfies it.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

type Client struct {
	baseURL string
	timeout time.Duration
	doer    Doer
	logger  logger.Interface
}

var _ API = (*Client)(nil)

func New(baseURL string, timeout time.Duration, l logger.Interface) *Client {
	return NewWithDoer(baseURL, timeout, &fasthttp.Client{
		Name:                "turfics-gateway",
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxIdleConnDuration: time.Minute,
	}, l)
}

func NewWithDoer(baseURL string, timeout time.Duration, doer Doer, l logger.Interface) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		doer:    doer,
		logger:  l,
	}
}

func (c *Client) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(d) {
		return dl
	}

	return d
}

// do sends one call. A non-nil sess contributes its bearer token and is
// invalidated when the API rejects that token with 401 or 422.
func (c *Client) do(ctx context.Context, sess *session.Session, method, path string, query url.Values, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	hasToken := false

	if sess != nil {
		if token := sess.Token(); token != "" {
			req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)

			hasToken = true
		}
	}

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return failure.InternalError(err)
		}

		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	if err := c.doer.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		c.logger.Error(identifier, fmt.Sprintf("%s %s: %s", method, path, err.Error()))

		return failure.Upstream(http.StatusBadGateway, "turfics api unreachable")
	}

	status := resp.StatusCode()

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		msg := errorMessage(resp.Body())

		if sess != nil && hasToken && (status == http.StatusUnauthorized || status == http.StatusUnprocessableEntity) {
			if sess.Invalidate(msg) {
				c.logger.Warn(identifier, "session invalidated: "+path)
			}

			return failure.SessionExpired()
		}

		c.logger.Debug(identifier, fmt.Sprintf("%s %s answered %d: %s", method, path, status, msg))

		return failure.Upstream(status, msg)
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		c.logger.Error(identifier, "decode "+path+": "+err.Error())

		return failure.Upstream(http.StatusBadGateway, "malformed turfics api response")
	}

	return nil
}

func errorMessage(body []byte) string {
	var m Message
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}

	if m.Message != "" {
		return m.Message
	}

	return m.Error
}

func (c *Client) get(ctx context.Context, sess *session.Session, path string, query url.Values, out any) error {
	return c.do(ctx, sess, fasthttp.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, sess *session.Session, path string, in, out any) error {
	return c.do(ctx, sess, fasthttp.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, sess *session.Session, path string, in, out any) error {
	return c.do(ctx, sess, fasthttp.MethodPut, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, sess *session.Session, path string, out any) error {
	return c.do(ctx, sess, fasthttp.MethodDelete, path, nil, nil, out)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
