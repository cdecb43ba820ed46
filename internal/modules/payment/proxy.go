// README: Server-side relay to the payment gateway so the browser never calls it cross-origin.
package payment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	ErrUnknownTarget = errors.New("unknown payment target")
	ErrInvalidID     = errors.New("invalid resource id")
	ErrMissingAPIKey = errors.New("payment api key missing")
	ErrUpstream      = errors.New("payment gateway unreachable")
)

type Target string

const (
	TargetCustomers Target = "customers"
	TargetPayments  Target = "payments"
)

// APIKeyHeader is the gateway's authentication header.
const APIKeyHeader = "access_token"

const maxResponseBytes = 4 << 20

var resourceID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type Config struct {
	APIKey       string
	CustomersURL string
	PaymentsURL  string
	Timeout      time.Duration
}

type Request struct {
	Method string
	Target Target
	ID     string
	Query  url.Values
	Body   []byte
}

// Response carries the upstream status and body unchanged.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

type Proxy struct {
	cfg    Config
	client *http.Client
}

func NewProxy(cfg Config, client *http.Client) *Proxy {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Proxy{cfg: cfg, client: client}
}

func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(s))) {
	case TargetCustomers:
		return TargetCustomers, nil
	case TargetPayments:
		return TargetPayments, nil
	}
	return "", ErrUnknownTarget
}

func (p *Proxy) upstream(req Request) (string, error) {
	var base string
	switch req.Target {
	case TargetCustomers:
		base = p.cfg.CustomersURL
	case TargetPayments:
		base = p.cfg.PaymentsURL
	default:
		return "", ErrUnknownTarget
	}
	if req.ID != "" {
		if !resourceID.MatchString(req.ID) {
			return "", ErrInvalidID
		}
		base = strings.TrimRight(base, "/") + "/" + req.ID
	}
	if len(req.Query) > 0 {
		base += "?" + req.Query.Encode()
	}
	return base, nil
}

// Forward relays req to the target's fixed upstream URL. Any upstream status,
// including errors, is returned as a Response; only transport failures are errors.
func (p *Proxy) Forward(ctx context.Context, req Request) (Response, error) {
	target, err := p.upstream(req)
	if err != nil {
		return Response{}, err
	}
	if p.cfg.APIKey == "" {
		return Response{}, ErrMissingAPIKey
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	out, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Response{}, err
	}
	out.Header.Set("Content-Type", "application/json")
	out.Header.Set("Accept", "application/json")
	out.Header.Set(APIKeyHeader, p.cfg.APIKey)

	resp, err := p.client.Do(out)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	return Response{Status: resp.StatusCode, ContentType: ct, Body: raw}, nil
}
