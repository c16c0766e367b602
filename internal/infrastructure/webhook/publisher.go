package webhook

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/oddsforge/matchdna/internal/domain/matchup"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

type PublisherConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Publisher POSTs finished analyses to a downstream webhook. Delivery is
// fire-and-forget from the caller's point of view; the orchestrator logs
// and moves on when this fails.
type Publisher struct {
	client  *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	logger  *logging.Logger
}

func NewPublisher(cfg PublisherConfig, logger *logging.Logger) *Publisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Publisher{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		logger:  logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, analysis matchup.Analysis) error {
	baseURL, err := validateHTTPBaseURL(p.baseURL)
	if err != nil {
		return fmt.Errorf("invalid webhook base URL: %w", err)
	}
	publishURL := baseURL + "/v1/analyses"

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(analysis); err != nil {
		return fmt.Errorf("marshal analysis payload: %w", err)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.publish_url", publishURL),
			attribute.String("webhook.match", analysis.HomeTeam+" vs "+analysis.AwayTeam),
			attribute.Int("webhook.payload_bytes", buf.Len()),
		)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(publishURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.SetBody(buf.Bytes())

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		return fmt.Errorf("publish analysis url=%s: %w", publishURL, err)
	}

	if resp.StatusCode()/100 != 2 {
		return fmt.Errorf("publish analysis status=%d url=%s body=%s",
			resp.StatusCode(), publishURL, truncateForLog(string(resp.Body()), 4096))
	}

	p.logger.InfoContext(ctx, "analysis published",
		"home", analysis.HomeTeam, "away", analysis.AwayTeam, "url", publishURL)
	return nil
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", fmt.Errorf("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", candidate, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
