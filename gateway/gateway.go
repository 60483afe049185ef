// Package gateway is the single point of egress for every remote API call.
//
// A request runs through an ordered list of decorators (credential, request
// id), one transport call, then response classification. Success and failure
// surfacing rules live here so callers only handle control flow.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"taskboard/models"
)

// defaultTimeout caps every remote call.
const defaultTimeout = 10 * time.Second

// TokenStore is the slice of the credential store the gateway needs: read the
// credential for outgoing requests, wipe it when the server rejects it.
type TokenStore interface {
	Get() (string, bool)
	Remove() error
}

// Notifier receives the user-visible feedback the gateway produces. The UI
// tier renders these as flash messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator performs client-side redirects and reports where the UI currently is.
type Navigator interface {
	CurrentPath() string
	Goto(path string)
}

// RequestDecorator mutates an outgoing request before transport. Decorators
// run in registration order.
type RequestDecorator func(*http.Request)

// Config wires a Gateway.
type Config struct {
	BaseURL   string
	Tokens    TokenStore
	Notifier  Notifier
	Navigator Navigator
	// Timeout overrides the default 10s client timeout.
	Timeout time.Duration
}

// Gateway dispatches requests against the remote API.
type Gateway struct {
	baseURL    string
	client     *http.Client
	tokens     TokenStore
	notify     Notifier
	nav        Navigator
	decorators []RequestDecorator
}

// New builds a Gateway with the standard decorator pipeline.
func New(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	g := &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  cfg.Tokens,
		notify:  cfg.Notifier,
		nav:     cfg.Navigator,
	}
	g.decorators = []RequestDecorator{g.attachCredential, attachRequestID}
	return g
}

// attachCredential adds the bearer header whenever a credential is stored.
// Unconditional for all routes; the server ignores it where it is not needed.
func (g *Gateway) attachCredential(r *http.Request) {
	if tok, ok := g.tokens.Get(); ok {
		r.Header.Set("Authorization", "Bearer "+tok)
	}
}

// attachRequestID tags requests so server logs can be correlated.
func attachRequestID(r *http.Request) {
	r.Header.Set("X-Request-ID", uuid.New().String())
}

// Get issues a GET and decodes the envelope payload into out.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, decorate := range g.decorators {
		decorate(req)
	}

	logger.Debug("api request", zap.String("method", method), zap.String("path", path))

	resp, err := g.client.Do(req)
	if err != nil {
		netErr := &Error{
			Kind:    KindNetwork,
			Message: "Network error. Please check your connection",
			Cause:   err,
		}
		return g.fail(method, path, netErr)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	// The envelope may be missing or malformed on errors; classification
	// falls back to generic messages in that case.
	var envelope models.APIResponse
	_ = json.Unmarshal(raw, &envelope)

	if resp.StatusCode < 400 {
		g.announceSuccess(method, path, envelope)
		if out != nil && len(envelope.Data) > 0 {
			if err := json.Unmarshal(envelope.Data, out); err != nil {
				return fmt.Errorf("decode response payload: %w", err)
			}
		}
		return nil
	}

	classified := classify(resp.StatusCode, envelope.Message, envelope.Errors)
	if classified.Kind == KindAuthExpired {
		g.expireSession()
	}
	return g.fail(method, path, classified)
}

// announceSuccess surfaces the server's message for mutations outside the
// auth and user-profile namespaces. Reads and auth/profile mutations stay
// silent; those callers render their own feedback.
func (g *Gateway) announceSuccess(method, path string, envelope models.APIResponse) {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return
	}
	if isAuthPath(path) || isUserPath(path) {
		return
	}
	if !envelope.Success {
		return
	}
	g.notify.Success(fallback(envelope.Message, "Operation successful"))
}

// expireSession is the global 401 side effect: wipe the credential and force
// the UI back to the login screen unless it is already there.
func (g *Gateway) expireSession() {
	if err := g.tokens.Remove(); err != nil {
		logger.Error("remove credential", zap.Error(err))
	}
	if !strings.HasPrefix(g.nav.CurrentPath(), "/login") {
		g.nav.Goto("/login")
	}
}

// fail logs the classified error, surfaces it for non-auth calls, and hands
// it back to the caller either way.
func (g *Gateway) fail(method, path string, e *Error) error {
	logger.Error("api request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", e.Status),
		zap.String("message", e.Message),
		zap.Error(e.Cause),
	)
	if !isAuthPath(path) {
		// Auth calls stay silent here so login/signup forms can show the
		// error next to the field instead of reporting it twice.
		g.notify.Error(e.Message)
	}
	return e
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/auth")
}

func isUserPath(path string) bool {
	return strings.HasPrefix(path, "/users")
}
