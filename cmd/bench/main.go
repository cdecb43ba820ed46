// README: Smoke runner entrypoint; TRANSFER_BENCH_* settings, flags win over env.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL        string
	DSN            string
	RedisAddr      string
	MigrationPath  string
	ApplyMigration bool
	Strict         bool
	CouponBurst    int
	Timeout        time.Duration
	Concurrency    int
	Duration       time.Duration
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	sum := summarize(NewRunner(cfg).RunAll(ctx))
	sum.Print(os.Stdout)
	return sum.ExitCode(cfg.Strict)
}

// loadConfig resolves each setting from TRANSFER_<KEY> first, then lets the
// matching flag override it.
func loadConfig(args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRANSFER")
	v.AutomaticEnv()
	v.SetDefault("bench_base_url", "http://localhost:8080")
	v.SetDefault("db_dsn", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("bench_migration", "migrations/0001_coupon_usages.sql")
	v.SetDefault("bench_apply_migration", false)
	v.SetDefault("bench_strict", false)
	v.SetDefault("bench_coupon_burst", 0)
	v.SetDefault("bench_timeout", "60s")
	v.SetDefault("bench_concurrency", 20)
	v.SetDefault("bench_duration", "10s")

	var cfg Config
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "base-url", v.GetString("bench_base_url"), "API base URL")
	fs.StringVar(&cfg.DSN, "dsn", v.GetString("db_dsn"), "Postgres DSN (empty skips DB checks)")
	fs.StringVar(&cfg.RedisAddr, "redis", v.GetString("redis_addr"), "Redis address")
	fs.StringVar(&cfg.MigrationPath, "migration", v.GetString("bench_migration"), "coupon_usages migration to check or apply")
	fs.BoolVar(&cfg.ApplyMigration, "apply-migration", v.GetBool("bench_apply_migration"), "apply the migration before the cases run")
	fs.BoolVar(&cfg.Strict, "strict", v.GetBool("bench_strict"), "treat PENDING cases as failures")
	fs.IntVar(&cfg.CouponBurst, "coupon-burst", v.GetInt("bench_coupon_burst"), "coupon validations sent to trip the rate limit (0 skips)")
	fs.DurationVar(&cfg.Timeout, "timeout", v.GetDuration("bench_timeout"), "overall deadline")
	fs.IntVar(&cfg.Concurrency, "concurrency", v.GetInt("bench_concurrency"), "parallel quote requests in the load case")
	fs.DurationVar(&cfg.Duration, "duration", v.GetDuration("bench_duration"), "length of the load case")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 || cfg.Concurrency <= 0 {
		return Config{}, fmt.Errorf("timeout and concurrency must be positive")
	}
	return cfg, nil
}
