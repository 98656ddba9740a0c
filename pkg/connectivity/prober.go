package connectivity

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/instructure/canvas-android-sub046/pkg/log"
)

const (
	defaultTTL     = 15 * time.Second
	defaultTimeout = 5 * time.Second
)

// ProberConfig configures a Prober.
type ProberConfig struct {
	URL     string
	TTL     time.Duration // how long a probe answer is reused
	Timeout time.Duration
}

// Prober decides connectivity by sending a HEAD request to a URL. Any HTTP
// response, whatever its status, counts as online; only transport errors
// count as offline. Answers are cached for TTL so a burst of repository
// reads costs one probe.
type Prober struct {
	url    string
	client *http.Client
	cache  *expirable.LRU[string, bool]
	l      log.Logger
}

// NewProber creates a Prober.
func NewProber(l log.Logger, cfg ProberConfig) *Prober {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Prober{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  expirable.NewLRU[string, bool](1, nil, cfg.TTL),
		l:      l,
	}
}

// IsOnline implements Oracle.
func (p *Prober) IsOnline(ctx context.Context) bool {
	if online, ok := p.cache.Get(p.url); ok {
		return online
	}

	online := p.probe(ctx)
	if ctx.Err() == nil {
		p.cache.Add(p.url, online)
	}
	return online
}

// Invalidate drops the cached answer so the next call probes again.
func (p *Prober) Invalidate() {
	p.cache.Purge()
}

func (p *Prober) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.l.Errorf(ctx, "connectivity: invalid probe url %q: %v", p.url, err)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.l.Debugf(ctx, "connectivity: probe failed, treating as offline: %v", err)
		return false
	}
	resp.Body.Close()
	return true
}
