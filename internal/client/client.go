// Package client wraps outbound requests to the remote Spacebook service.
// Every operation performs one authenticated HTTP exchange and translates
// transport and status failures into a small error taxonomy the screens can
// react to without inspecting status codes themselves.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/domain"
)

// AuthHeader carries the opaque session token on every protected request.
const AuthHeader = "X-Authorization"

var (
	// ErrUnauthenticated maps status 401. The caller must clear the session
	// and route to the login flow; retrying cannot help.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden maps status 403: a business rule violation such as liking
	// a post twice. Never retried automatically.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound maps status 404.
	ErrNotFound = errors.New("not found")
	// ErrMalformedRequest maps status 400, used by the service for login
	// failures and rejected update bodies.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrServer maps status 500. Surfaced to the user as transient; this
	// client performs no retry or backoff anywhere.
	ErrServer = errors.New("server error")
	// ErrTransport covers network, DNS and timeout failures that occur
	// before any status code is obtained.
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse means the service answered with a body that does
	// not decode into the endpoint's schema.
	ErrMalformedResponse = errors.New("malformed response")
)

// ForbiddenError carries the service's reason for a 403 when one was sent.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	if e.Reason == "" {
		return "forbidden"
	}
	return "forbidden: " + e.Reason
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// TokenSource yields the currently persisted session, if any. The token is
// read before each request is issued; an absent token is still sent (empty),
// leaving the server to answer 401.
type TokenSource interface {
	Get(ctx context.Context) (sess domain.Session, ok bool, err error)
}

type Client struct {
	base     *url.URL
	client   *http.Client
	sessions TokenSource
}

func New(base string, httpClient *http.Client, sessions TokenSource) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	return &Client{
		base:     u,
		client:   httpClient,
		sessions: sessions,
	}, nil
}

// token reads the session token. Reading happens before the request is
// issued; a logout racing an in-flight request is not coordinated.
func (c *Client) token(ctx context.Context) (string, error) {
	sess, ok, err := c.sessions.Get(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return sess.Token, nil
}

// do performs one exchange. A JSON body is sent when in is non-nil; the
// response body is decoded into out when the status matches wantStatus and
// out is non-nil. Any other status is mapped to the package's taxonomy.
func (c *Client) do(ctx context.Context, method string, query url.Values, in, out any, wantStatus int, segments ...string) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, query, body, segments...)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.send(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return statusError(res)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", req.URL.Path).Msg("response body does not match endpoint schema")
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// doRaw is the binary variant used by the photo endpoints.
func (c *Client) doRaw(ctx context.Context, method, contentType string, in []byte, wantStatus int, segments ...string) (content []byte, err error) {
	var body io.Reader
	if in != nil {
		body = bytes.NewReader(in)
	}

	req, err := c.newRequest(ctx, method, nil, body, segments...)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return nil, statusError(res)
	}

	content, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return content, nil
}

func (c *Client) newRequest(ctx context.Context, method string, query url.Values, body io.Reader, segments ...string) (*http.Request, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.base.JoinPath(segments...)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(AuthHeader, token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("request failed before a status was obtained")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("request id", req.Header.Get("X-Request-Id")).
		Int("status", res.StatusCode).
		Send()
	return res, nil
}

func statusError(res *http.Response) error {
	switch res.StatusCode {
	case http.StatusBadRequest:
		return ErrMalformedRequest
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		reason, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &ForbiddenError{Reason: string(bytes.TrimSpace(reason))}
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrServer
	default:
		log.Error().Str("status", res.Status).Msg("unexpected status from service")
		return fmt.Errorf("unexpected status %s", res.Status)
	}
}
