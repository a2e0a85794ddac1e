// request_executor.go
// -------------------
// The transport layer. A RequestExecutor issues the GET described by a
// RequestDescriptor and applies bounded exponential-backoff retry. The
// backoff policy is an explicit loop (base * 2^attempt, capped) rather than
// any HTTP client feature, so it stays portable and testable against a
// stubbed server.
package f1data

import (
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Second
	DefaultTimeout     = 10 * time.Second

	maxBackoff = 30 * time.Second
)

// RequestExecutor is the concrete Fetcher. It reuses one HTTP client across
// all calls; there is no concurrent work to interleave, so the retry waits
// are plain sleeps.
type RequestExecutor struct {
	client      *http.Client
	maxRetries  int
	baseBackoff time.Duration
	logger      *zap.Logger
	sleep       func(time.Duration)
}

func NewRequestExecutor(cfg SourceConfig, logger *zap.Logger) *RequestExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = DefaultBaseBackoff
	}
	return &RequestExecutor{
		client:      &http.Client{Timeout: timeout},
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		logger:      logger,
		sleep:       time.Sleep,
	}
}

// Fetch runs the descriptor's GET up to MaxRetries times. Every failed
// attempt logs one line; between attempts the executor sleeps the computed
// backoff, except after the final one. Callers treat an error as "no data",
// never as fatal.
func (re *RequestExecutor) Fetch(desc *RequestDescriptor) (*RawResponse, error) {
	maxRetries := desc.MaxRetries
	if maxRetries <= 0 {
		maxRetries = re.maxRetries
	}
	endpoint := desc.URL()

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := re.do(desc, endpoint)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		re.logger.Warn("request attempt failed",
			zap.String("url", endpoint),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries),
			zap.Error(err))
		if attempt < maxRetries-1 {
			re.sleep(re.backoff(attempt))
		}
	}
	return nil, errors.Wrapf(lastErr, "fetching %s", endpoint)
}

func (re *RequestExecutor) do(desc *RequestDescriptor, endpoint string) (*RawResponse, error) {
	client := re.client
	if desc.Timeout > 0 && desc.Timeout != re.client.Timeout {
		client = &http.Client{Timeout: desc.Timeout}
	}

	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	return &RawResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// backoff computes base * 2^attempt, capped so a flaky endpoint cannot stall
// a season run for minutes.
func (re *RequestExecutor) backoff(attempt int) time.Duration {
	d := re.baseBackoff * (1 << attempt)
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}
