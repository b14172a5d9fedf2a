// Command dependente-form submits a beneficiary registration form to the
// configured webhook endpoint. The raw form state is read as JSON from a
// file or stdin; sanitization, critical validation, rate limiting and
// response handling follow the same pipeline the web form uses.
//
// Usage:
//
//	FORM_API_URL=https://hooks.example.com/form dependente-form -input form.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JoaoLuiz92/dependente-plan-form/config"
	"github.com/JoaoLuiz92/dependente-plan-form/form"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/kv"
	"github.com/JoaoLuiz92/dependente-plan-form/pkg/logger"
	"github.com/JoaoLuiz92/dependente-plan-form/submission"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	inputPath := flag.String("input", "-", "path to the raw form JSON, or - for stdin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("app", cfg.AppName)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, err := readInput(*inputPath)
	if err != nil {
		return err
	}

	var store kv.Store = kv.NewMemory()
	if cfg.RedisURL != "" {
		redisStore, err := kv.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redisStore.Close()
		store = redisStore
	}

	notifier := submission.NotifierFunc(func(title, description string, severity submission.Severity) {
		if severity == submission.SeverityError {
			log.Error(title, slog.String("detail", description))
			return
		}
		log.Info(title, slog.String("detail", description))
	})

	sub := submission.New(cfg.APIURL, store,
		submission.WithLimits(cfg.Limits()),
		submission.WithWindow(cfg.RateLimitWindow),
		submission.WithNotifier(notifier),
		submission.WithLogger(log),
		submission.WithUserAgent(cfg.AppName+"-cli/"+cfg.AppVersion),
		submission.WithRedirect(func(url string) {
			log.Info("open the platform to continue", slog.String("url", url))
		}),
	)

	in.Dependents = form.Reconcile(in.Dependents, in.DependentCount)

	result, err := sub.Submit(ctx, in)
	if err != nil {
		return err
	}

	if result.RedirectURL != "" {
		fmt.Println(result.RedirectURL)
	}
	return nil
}

func readInput(path string) (form.Input, error) {
	var in form.Input

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return in, err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return in, fmt.Errorf("decode form input: %w", err)
	}

	return in, nil
}
