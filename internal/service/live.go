package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/score"
)

// DefaultURL is the public mock credit score endpoint.
const DefaultURL = "https://5lfoiyb0b3.execute-api.us-west-2.amazonaws.com/prod/mockcredit/values"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

const tracerName = "github.com/agbru/scorering/internal/service"

// Live fetches the score over HTTP.
type Live struct {
	url    string
	client *http.Client
	tracer trace.Tracer
	logger logging.Logger
}

// LiveOption configures a Live fetcher.
type LiveOption func(*Live)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) LiveOption {
	return func(l *Live) { l.client = c }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) LiveOption {
	return func(l *Live) { l.client = &http.Client{Timeout: d} }
}

// WithLogger attaches a logger.
func WithLogger(logger logging.Logger) LiveOption {
	return func(l *Live) { l.logger = logger }
}

// WithTracer replaces the tracer taken from the global provider.
func WithTracer(t trace.Tracer) LiveOption {
	return func(l *Live) { l.tracer = t }
}

// NewLive creates a fetcher for url.
func NewLive(url string, opts ...LiveOption) *Live {
	l := &Live{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		tracer: otel.Tracer(tracerName),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// URL returns the endpoint.
func (l *Live) URL() string { return l.url }

// Fetch performs one GET and decodes the payload.
func (l *Live) Fetch(ctx context.Context) (score.Data, error) {
	requestID := uuid.NewString()
	ctx, span := l.tracer.Start(ctx, "score.fetch", trace.WithAttributes(
		attribute.String("http.url", l.url),
		attribute.String("request.id", requestID),
	))
	defer span.End()

	data, err := l.fetch(ctx, requestID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.logger.Debug("score fetch failed", logging.String("request_id", requestID), logging.Err(err))
		return score.Data{}, err
	}
	span.SetAttributes(attribute.Int("score.value", data.Score), attribute.Int("score.max", data.MaxScore))
	l.logger.Debug("score fetched",
		logging.String("request_id", requestID),
		logging.Int("score", data.Score),
		logging.Int("max", data.MaxScore),
	)
	return data, nil
}

func (l *Live) fetch(ctx context.Context, requestID string) (score.Data, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return score.Data{}, ServerError{Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := l.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return score.Data{}, NetworkError{Cause: ctxErr}
		}
		return score.Data{}, NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return score.Data{}, ServerError{Cause: StatusError{StatusCode: resp.StatusCode}}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return score.Data{}, ServerError{Cause: err}
	}

	data, err := Decode(body)
	if err != nil {
		return score.Data{}, ServerError{Cause: err}
	}
	return data, nil
}

// Decode extracts the score from a payload of the form
// {"creditReportInfo": {"score": n, "minScoreValue": n, "maxScoreValue": n}}.
// Each field must be an integral JSON number.
func Decode(body []byte) (score.Data, error) {
	if !gjson.ValidBytes(body) {
		return score.Data{}, DecodeError{Reason: "malformed JSON"}
	}
	info := gjson.GetBytes(body, "creditReportInfo")
	if !info.IsObject() {
		return score.Data{}, DecodeError{Field: "creditReportInfo", Reason: "missing or not an object"}
	}

	var data score.Data
	fields := []struct {
		key string
		dst *int
	}{
		{"score", &data.Score},
		{"minScoreValue", &data.MinScore},
		{"maxScoreValue", &data.MaxScore},
	}
	for _, f := range fields {
		v := info.Get(f.key)
		if !v.Exists() {
			return score.Data{}, DecodeError{Field: f.key, Reason: "missing"}
		}
		if v.Type != gjson.Number {
			return score.Data{}, DecodeError{Field: f.key, Reason: fmt.Sprintf("expected number, got %s", v.Type)}
		}
		if v.Num != math.Trunc(v.Num) || math.Abs(v.Num) > math.MaxInt32 {
			return score.Data{}, DecodeError{Field: f.key, Reason: "not an integer"}
		}
		*f.dst = int(v.Int())
	}
	return data, nil
}
