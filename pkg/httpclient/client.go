package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/apostle2t/jobboard/pkg/errs"
)

// TokenSource supplies the bearer token attached to upstream calls and is
// told to drop it when the backend answers 401.
type TokenSource interface {
	Token() string
	ClearToken() error
}

type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RetryMaxElapsed time.Duration
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// Client is the shared base for every upstream REST client: bearer auth,
// exponential backoff on transport errors and 5xx, and a circuit breaker in
// front of the whole thing.
type Client struct {
	http    *http.Client
	base    string
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
	conf    Config
}

func New(conf Config, tokens TokenSource) *Client {
	if conf.Timeout <= 0 {
		conf.Timeout = 10 * time.Second
	}
	if conf.RetryMaxElapsed <= 0 {
		conf.RetryMaxElapsed = 15 * time.Second
	}
	if conf.MaxIdleConns <= 0 {
		conf.MaxIdleConns = 20
	}
	if conf.IdleConnTimeout <= 0 {
		conf.IdleConnTimeout = 90 * time.Second
	}

	tr := &http.Transport{
		DialContext:     (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		MaxIdleConns:    conf.MaxIdleConns,
		IdleConnTimeout: conf.IdleConnTimeout,
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "upstream-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		http:    &http.Client{Transport: tr, Timeout: conf.Timeout},
		base:    strings.TrimRight(conf.BaseURL, "/"),
		tokens:  tokens,
		breaker: breaker,
		conf:    conf,
	}
}

// DoJSON performs a JSON request against path and decodes the response body
// into out when out is non-nil.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	_, err := c.DoJSONHeader(ctx, method, path, query, body, out)
	return err
}

// DoJSONHeader is DoJSON for callers that also read response headers, such
// as backends handing the session token back via Authorization.
func (c *Client) DoJSONHeader(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	var (
		payload     []byte
		contentType string
		err         error
	)
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, payload, contentType, out)
}

// DoMultipart uploads a single file under field as multipart/form-data.
func (c *Client) DoMultipart(ctx context.Context, method, path, field, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("copy form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}
	_, err = c.do(ctx, method, path, nil, buf.Bytes(), mw.FormDataContentType(), out)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte, contentType string, out any) (http.Header, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	res, err := c.breaker.Execute(func() (any, error) {
		return c.send(ctx, method, target, payload, contentType)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errs.ErrUnavailable, err)
		}
		return nil, err
	}

	resp := res.(*http.Response)
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		// session expired: drop the stored token so the UI re-authenticates
		if c.tokens != nil {
			if cerr := c.tokens.ClearToken(); cerr != nil {
				slog.Error("clear token failed", "err", cerr)
			}
		}
		return resp.Header, fmt.Errorf("%w: %s %s", errs.ErrUnauthorized, method, path)
	}
	if resp.StatusCode == http.StatusNotFound {
		return resp.Header, fmt.Errorf("%w: %s %s", errs.ErrNotFound, method, path)
	}
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return resp.Header, fmt.Errorf("%w: %s %s: status %d: %s",
			errs.ErrInvalidInput, method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return resp.Header, nil
	}
	// an empty body is fine, some endpoints answer with headers only
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return resp.Header, fmt.Errorf("%w: decode response: %v", errs.ErrUpstream, err)
	}
	return resp.Header, nil
}

// send runs one request with exponential backoff. Transport errors and 5xx
// answers retry until RetryMaxElapsed; everything else returns immediately.
func (c *Client) send(ctx context.Context, method, target string, payload []byte, contentType string) (*http.Response, error) {
	var resp *http.Response

	op := func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		r, err := c.http.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode >= 500 {
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
			return fmt.Errorf("%w: status %d", errs.ErrUpstream, r.StatusCode)
		}
		resp = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.conf.RetryMaxElapsed
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return resp, nil
}
