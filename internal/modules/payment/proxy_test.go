package payment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestProxy_ForwardsAndPassesThrough(t *testing.T) {
	var gotMethod, gotPath, gotKey, gotBody, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotKey, gotQuery = r.Method, r.URL.Path, r.Header.Get(APIKeyHeader), r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"cus_123"}`)
	}))
	defer srv.Close()

	p := NewProxy(Config{APIKey: "secret", CustomersURL: srv.URL + "/v3/customers", PaymentsURL: srv.URL + "/v3/payments"}, srv.Client())
	resp, err := p.Forward(context.Background(), Request{
		Method: http.MethodPost,
		Target: TargetCustomers,
		Query:  url.Values{"cpfCnpj": {"12345678909"}},
		Body:   []byte(`{"name":"Ana"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusCreated || string(resp.Body) != `{"id":"cus_123"}` {
		t.Errorf("resp = %d %s", resp.Status, resp.Body)
	}
	if gotMethod != http.MethodPost || gotPath != "/v3/customers" || gotKey != "secret" {
		t.Errorf("upstream saw %s %s key=%q", gotMethod, gotPath, gotKey)
	}
	if gotBody != `{"name":"Ana"}` || gotQuery != "cpfCnpj=12345678909" {
		t.Errorf("upstream body=%q query=%q", gotBody, gotQuery)
	}
}

func TestProxy_UpstreamErrorStatusPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/payments/pay_9" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"errors":[{"code":"invalid_value"}]}`)
	}))
	defer srv.Close()

	p := NewProxy(Config{APIKey: "k", PaymentsURL: srv.URL + "/v3/payments/"}, nil)
	resp, err := p.Forward(context.Background(), Request{Method: http.MethodGet, Target: TargetPayments, ID: "pay_9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusBadRequest || resp.ContentType != "application/json" {
		t.Errorf("resp = %d %s", resp.Status, resp.ContentType)
	}
}

func TestProxy_Errors(t *testing.T) {
	ok := Config{APIKey: "k", CustomersURL: "http://127.0.0.1:1/customers", PaymentsURL: "http://127.0.0.1:1/payments"}
	tests := []struct {
		name string
		cfg  Config
		req  Request
		want error
	}{
		{name: "unknown target", cfg: ok, req: Request{Target: "refunds"}, want: ErrUnknownTarget},
		{name: "bad id", cfg: ok, req: Request{Target: TargetPayments, ID: "../admin"}, want: ErrInvalidID},
		{name: "missing key", cfg: Config{CustomersURL: ok.CustomersURL}, req: Request{Target: TargetCustomers}, want: ErrMissingAPIKey},
		{name: "unreachable", cfg: ok, req: Request{Target: TargetCustomers}, want: ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProxy(tt.cfg, nil).Forward(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	if got, err := ParseTarget(" Payments "); err != nil || got != TargetPayments {
		t.Errorf("ParseTarget = %s, %v", got, err)
	}
	if _, err := ParseTarget("webhooks"); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("err = %v", err)
	}
}
