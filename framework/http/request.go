package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Binding ──────────────────────────────────────────────────────────────────

// MaxBodyBytes caps the request body Bind reads.
const MaxBodyBytes = 1 << 20

// ErrEmptyBody is returned by Bind when the request has no body.
var ErrEmptyBody = errors.New("empty request body")

// Bind decodes a JSON request body into v. Numbers decode as json.Number so
// integer overrides keep their precision. A body over MaxBodyBytes fails
// with *http.MaxBytesError.
func (req *Request) Bind(v any) error {
	if ct := req.ContentType(); ct != "" && !strings.Contains(ct, "application/json") {
		return errors.New("unsupported content type " + ct)
	}
	defer req.raw.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(nil, req.raw.Body, MaxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}

// ── Input helpers ────────────────────────────────────────────────────────────

// RouteParam returns a URL route parameter (chi). chi matches on the raw
// path when the URL carries one (an escaped "/" for instance), so only then
// is the value unescaped; otherwise it is already decoded and a literal
// "%41" in an id stays as is.
func (req *Request) RouteParam(key string) string {
	v := chi.URLParam(req.raw, key)
	if req.raw.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.Header("Content-Type")
}
