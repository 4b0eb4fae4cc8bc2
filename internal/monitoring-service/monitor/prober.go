package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ProbeResult struct {
	StatusCode   int
	Body         string
	ResponseTime int64 // milliseconds
}

// Prober performs a single GET against a website. Any HTTP response, whatever
// the status code, is a successful probe; only connection-level failures
// (DNS, refused, timeout, TLS) return an error. Retries are a scheduling
// concern, not the prober's.
type Prober interface {
	Probe(ctx context.Context, url string) (ProbeResult, error)
}

type prober struct {
	client *http.Client
}

func (p *prober) Probe(ctx context.Context, url string) (ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("Prober.Probe creating request: %w", err)
	}
	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("Prober.Probe: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("Prober.Probe reading body: %w", err)
	}
	return ProbeResult{
		StatusCode:   resp.StatusCode,
		Body:         string(body),
		ResponseTime: time.Since(start).Milliseconds(),
	}, nil
}

// NewProber builds a prober with a hard per-probe timeout. The default
// redirect policy of http.Client applies, so redirect chains are capped at 10.
func NewProber(timeout time.Duration) Prober {
	return &prober{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}
