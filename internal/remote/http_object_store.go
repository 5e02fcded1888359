package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPStoreConfig configures the HTTP object store client.
type HTTPStoreConfig struct {
	// BaseURL is the remote endpoint, e.g. "https://store.example.com".
	BaseURL string
	// Prefix is the per-collection namespace prepended to every key.
	Prefix string
	// Token is the bearer credential sent with every request.
	Token string
	// Timeout bounds every request; a hang becomes ErrRemoteUnavailable.
	Timeout time.Duration
}

// httpObjectStore talks to a remote object store over HTTP. Conditional
// semantics use standard entity-tag headers: If-None-Match: * for
// create-if-absent and If-Match for version-gated replace; the server
// answers 412 Precondition Failed when the condition does not hold.
type httpObjectStore struct {
	client *resty.Client
	prefix string
}

func NewHTTPObjectStore(cfg HTTPStoreConfig) ObjectStore {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return &httpObjectStore{client: cli, prefix: strings.Trim(cfg.Prefix, "/")}
}

func (s *httpObjectStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.objectPath(key))
	if err != nil {
		return nil, "", fmt.Errorf("%w: get %s: %w", ErrRemoteUnavailable, key, err)
	}
	if err = mapHTTPError(resp, key); err != nil {
		return nil, "", err
	}

	return resp.Body(), resp.Header().Get("ETag"), nil
}

func (s *httpObjectStore) Create(ctx context.Context, key string, body []byte) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("If-None-Match", "*").
		SetBody(body).
		Put(s.objectPath(key))
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrRemoteUnavailable, key, err)
	}
	if resp.StatusCode() == http.StatusPreconditionFailed {
		return "", fmt.Errorf("%w: %s", ErrObjectExists, key)
	}
	if err = mapHTTPError(resp, key); err != nil {
		return "", err
	}

	return resp.Header().Get("ETag"), nil
}

func (s *httpObjectStore) Replace(ctx context.Context, key string, body []byte, ifVersion string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("If-Match", ifVersion).
		SetBody(body).
		Put(s.objectPath(key))
	if err != nil {
		return "", fmt.Errorf("%w: replace %s: %w", ErrRemoteUnavailable, key, err)
	}
	if resp.StatusCode() == http.StatusPreconditionFailed {
		return "", fmt.Errorf("%w: %s", ErrVersionMismatch, key)
	}
	if err = mapHTTPError(resp, key); err != nil {
		return "", err
	}

	return resp.Header().Get("ETag"), nil
}

func (s *httpObjectStore) Put(ctx context.Context, key string, body []byte) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(s.objectPath(key))
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %w", ErrRemoteUnavailable, key, err)
	}
	if err = mapHTTPError(resp, key); err != nil {
		return "", err
	}

	return resp.Header().Get("ETag"), nil
}

func (s *httpObjectStore) Delete(ctx context.Context, key string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Delete(s.objectPath(key))
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrRemoteUnavailable, key, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp, key)
}

func (s *httpObjectStore) Versions(ctx context.Context, key string) ([]string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("versions", "1").
		Get(s.objectPath(key))
	if err != nil {
		return nil, fmt.Errorf("%w: versions %s: %w", ErrRemoteUnavailable, key, err)
	}
	if err = mapHTTPError(resp, key); err != nil {
		return nil, err
	}

	var versions []string
	if err = json.Unmarshal(resp.Body(), &versions); err != nil {
		return nil, fmt.Errorf("decode versions response for %s: %w", key, err)
	}

	return versions, nil
}

func (s *httpObjectStore) objectPath(key string) string {
	segments := make([]string, 0, 4)
	if s.prefix != "" {
		segments = append(segments, strings.Split(s.prefix, "/")...)
	}
	segments = append(segments, strings.Split(key, "/")...)

	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return "/" + strings.Join(segments, "/")
}

func mapHTTPError(resp *resty.Response, key string) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	case code == http.StatusRequestTimeout || code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d for %s", ErrRemoteUnavailable, code, key)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d for %s: %s", code, key, body)
}
