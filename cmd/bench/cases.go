// README: Smoke cases; pricing scenarios, HTTP surface, DB/Redis reachability and a quote throughput probe.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	statusPass    = "PASS"
	statusFail    = "FAIL"
	statusPending = "PENDING"
	statusSkip    = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

// Summary tallies results by status and remembers which cases did not pass.
type Summary struct {
	Counts  map[string]int
	Failed  []string
	Pending []string
}

func summarize(results []Result) Summary {
	s := Summary{Counts: map[string]int{}}
	for _, res := range results {
		s.Counts[res.Status]++
		switch res.Status {
		case statusFail:
			s.Failed = append(s.Failed, res.Name)
		case statusPending:
			s.Pending = append(s.Pending, res.Name)
		}
	}
	return s
}

func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n%d cases: %d passed, %d failed, %d pending, %d skipped\n",
		s.Counts[statusPass]+s.Counts[statusFail]+s.Counts[statusPending]+s.Counts[statusSkip],
		s.Counts[statusPass], s.Counts[statusFail], s.Counts[statusPending], s.Counts[statusSkip])
	for _, name := range s.Failed {
		fmt.Fprintf(w, "  failed:  %s\n", name)
	}
	for _, name := range s.Pending {
		fmt.Fprintf(w, "  pending: %s\n", name)
	}
}

// ExitCode is 1 on any failure, or on pending cases when strict.
func (s Summary) ExitCode(strict bool) int {
	if len(s.Failed) > 0 || (strict && len(s.Pending) > 0) {
		return 1
	}
	return 0
}

// quoteWant describes the expected single-category quote. A zero Price means
// any price at or above MinPrice is accepted.
type quoteWant struct {
	Price    int64
	MinPrice int64
	Strategy string
	Km       float64
	Minutes  int
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: "coupon usage store reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: statusSkip, Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name:  "Env: Redis connect",
			Focus: "selections, route cache and rate limiter reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: statusFail, Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name:  "Migration: apply (optional)",
			Focus: "apply migration SQL",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: statusSkip, Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: statusFail, Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				for _, s := range splitSQL(string(sql)) {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: statusFail, Note: err.Error()}
					}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name:  "Migration: tables exist",
			Focus: "tables named in the migration exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: statusSkip, Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: statusFail, Note: err.Error()}
					}
					if !exists {
						return Result{Status: statusFail, Note: "missing table: " + t}
					}
				}
				return Result{Status: statusPass}
			},
		},
		{
			Name:  "API: health",
			Focus: "GET /health answers OK",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodGet, base+"/health", nil)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				if status != http.StatusOK || strings.TrimSpace(string(body)) != "OK" {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d body=%q", status, body)}
				}
				return Result{Status: statusPass, Latency: latency}
			},
		},
		{
			Name:  "API: vehicle catalogue",
			Focus: "six categories",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodGet, base+"/api/vehicles", nil)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				var out struct {
					Vehicles []struct {
						Category string `json:"category"`
					} `json:"vehicles"`
				}
				if status != http.StatusOK || json.Unmarshal(body, &out) != nil {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				if len(out.Vehicles) != 6 {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("vehicles=%d", len(out.Vehicles))}
				}
				return Result{Status: statusPass, Latency: latency}
			},
		},

		// Pricing
		quoteCase("Pricing: Congonhas -> Paulista (postal)", base, "04626-911", "01310-100", "sedan-standard",
			quoteWant{Price: 24000, Strategy: "postal_route"}),
		quoteCase("Pricing: Paulista -> Congonhas (reverse)", base, "01310-100", "04626-911", "sedan-standard",
			quoteWant{Price: 24000, Strategy: "postal_route"}),
		quoteCase("Pricing: Guarulhos -> Paulista (named)", base, "Aeroporto de Guarulhos - Terminal 3", "Avenida Paulista, 1578", "sedan-standard",
			quoteWant{Price: 32000, Strategy: "named_route"}),
		quoteCase("Pricing: Rio Grande da Serra -> Butantã (regional)", base, "Rio Grande da Serra", "Butantã", "sedan-executive",
			quoteWant{Price: 45000, Strategy: "regional"}),
		quoteCase("Pricing: diária armored", base, "diária", "Hotel Unique, Jardins", "armored-premium",
			quoteWant{Price: 280000, Strategy: "daily", Km: 100, Minutes: 600}),
		quoteCase("Pricing: unknown pair (dynamic)", base, "Rua Desconhecida 1", "Estrada Sem Nome 2", "van-armored",
			quoteWant{MinPrice: 48000, Strategy: "dynamic"}),
		{
			Name:  "Pricing: every category",
			Focus: "quote without category returns catalogue order",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodPost, base+"/api/quotes", map[string]any{
					"origin":      "04626-911",
					"destination": "01310-100",
				})
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				var out struct {
					Quotes []quoteBody `json:"quotes"`
				}
				if status != http.StatusOK || json.Unmarshal(body, &out) != nil {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				want := []string{"sedan-standard", "sedan-executive", "armored-premium", "van-standard", "van-armored", "minibus"}
				if len(out.Quotes) != len(want) {
					return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("quotes=%d", len(out.Quotes))}
				}
				for i, q := range out.Quotes {
					if q.Category != want[i] {
						return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("quotes[%d]=%s", i, q.Category)}
					}
				}
				return Result{Status: statusPass, Latency: latency}
			},
		},
		httpCase("Pricing: missing origin -> 400", base+"/api/quotes", map[string]any{
			"destination": "01310-100",
		}, []int{400}, nil),
		httpCase("Pricing: unknown category -> 400", base+"/api/quotes", map[string]any{
			"origin":      "04626-911",
			"destination": "01310-100",
			"category":    "helicopter",
		}, []int{400}, nil),

		// Location
		httpCaseMethod("Location: identify CEP", http.MethodGet, base+"/api/locations/identify?q="+url.QueryEscape("01310-100"), nil, []int{200}, nil),
		httpCaseMethod("Location: autocomplete short input -> 400", http.MethodGet, base+"/api/places/autocomplete?input=ab", nil, []int{400}, nil),

		// Surface
		httpCaseMethod("HTTP: CORS preflight -> 204", http.MethodOptions, base+"/api/quotes", nil, []int{204}, nil),
		httpCaseMethod("HTTP: GET /api/quotes -> 405", http.MethodGet, base+"/api/quotes", nil, []int{405}, nil),
		httpCaseMethod("HTTP: unknown route -> 404", http.MethodGet, base+"/api/nope", nil, []int{404}, nil),
		httpCaseMethod("HTTP: metrics exposed", http.MethodGet, base+"/metrics", nil, []int{200}, nil),

		// Coupons
		httpCase("Coupon: empty code -> 400", base+"/api/coupons/validate", map[string]any{"code": ""}, []int{400, 429}, nil),
		{
			Name:  "Coupon: rate limit -> 429",
			Focus: "burst of validations from one client",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.cfg.CouponBurst <= 0 {
					return Result{Status: statusSkip, Note: "coupon-burst=0"}
				}
				return couponBurst(ctx, r, base+"/api/coupons/validate")
			},
		},

		manualCase("Reservation: confirmation email", "needs SMTP credentials and a real inbox"),
		manualCase("Payment: proxy round trip", "needs a payment sandbox API key"),

		{
			Name:  "Perf: quote throughput",
			Focus: "concurrent fixed-route quotes",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/quotes", map[string]any{
					"origin":      "04626-911",
					"destination": "01310-100",
					"category":    "sedan-standard",
				})
			},
		},
	}
}

type quoteBody struct {
	Category         string  `json:"category"`
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	FinalPrice       struct {
		Amount int64 `json:"amount"`
	} `json:"final_price"`
	Strategy string `json:"strategy"`
}

func quoteCase(name, base, origin, destination, category string, want quoteWant) TestCase {
	return TestCase{
		Name:  name,
		Focus: "POST /api/quotes",
		Run: func(ctx context.Context, r *Runner) Result {
			status, body, latency, err := r.do(ctx, http.MethodPost, base+"/api/quotes", map[string]any{
				"origin":      origin,
				"destination": destination,
				"category":    category,
			})
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if status != http.StatusOK {
				return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			var out struct {
				Quote quoteBody `json:"quote"`
			}
			if err := json.Unmarshal(body, &out); err != nil {
				return Result{Status: statusFail, Latency: latency, Note: err.Error()}
			}
			q := out.Quote
			note := fmt.Sprintf("%s amount=%d km=%.1f min=%d", q.Strategy, q.FinalPrice.Amount, q.DistanceKm, q.EstimatedMinutes)
			switch {
			case q.Strategy != want.Strategy:
			case want.Price != 0 && q.FinalPrice.Amount != want.Price:
			case want.Price == 0 && q.FinalPrice.Amount < want.MinPrice:
			case want.Km != 0 && q.DistanceKm != want.Km:
			case want.Minutes != 0 && q.EstimatedMinutes != want.Minutes:
			default:
				return Result{Status: statusPass, Latency: latency, Note: note}
			}
			return Result{Status: statusFail, Latency: latency, Note: note}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, 0, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp.StatusCode, b, time.Since(start), err
}

func httpCase(name, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses, pendingStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses, pendingStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, latency, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			note := fmt.Sprintf("status=%d", status)
			if contains(okStatuses, status) {
				return Result{Status: statusPass, Latency: latency, Note: note}
			}
			if contains(pendingStatuses, status) {
				return Result{Status: statusPending, Latency: latency, Note: note}
			}
			return Result{Status: statusFail, Latency: latency, Note: note}
		},
	}
}

func manualCase(name, note string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "Manual",
		Run: func(ctx context.Context, r *Runner) Result {
			return Result{Status: statusSkip, Note: note}
		},
	}
}

// couponBurst sends CouponBurst validations and expects the limiter to answer
// 429 at least once. It consumes the caller's window on the server.
func couponBurst(ctx context.Context, r *Runner, url string) Result {
	limited := 0
	for i := 0; i < r.cfg.CouponBurst; i++ {
		status, _, _, err := r.do(ctx, http.MethodPost, url, map[string]any{"code": "BEMVINDO10"})
		if err != nil {
			return Result{Status: statusFail, Note: err.Error()}
		}
		if status == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited == 0 {
		return Result{Status: statusFail, Note: fmt.Sprintf("no 429 after %d requests", r.cfg.CouponBurst)}
	}
	return Result{Status: statusPass, Note: fmt.Sprintf("limited=%d", limited)}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				status, _, _, err := r.do(ctx, http.MethodPost, url, payload)
				mu.Lock()
				if err != nil || status != http.StatusOK {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: statusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
