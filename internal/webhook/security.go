package webhook

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	allowIPs    []netip.Addr
	allowNets   []netip.Prefix
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) (*SecurityValidator, error) {
	v := &SecurityValidator{config: config}

	entries := lo.FilterMap(config.AllowedIPs, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid allowed_ips entry %q: %w", entry, err)
			}
			v.allowNets = append(v.allowNets, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed_ips entry %q: %w", entry, err)
		}
		v.allowIPs = append(v.allowIPs, addr.Unmap())
	}

	if config.RateLimitPerMin > 0 {
		v.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}
	return v, nil
}

// SignatureRequired reports whether deliveries must carry a valid signature.
func (v *SecurityValidator) SignatureRequired() bool {
	return v.config.VerifySignature
}

// ValidateGitHubSignature verifies the sha256=<hex> (or legacy sha1=) signature.
func (v *SecurityValidator) ValidateGitHubSignature(payload []byte, signature string) error {
	if v.config.Secret == "" {
		return fmt.Errorf("webhook secret not configured")
	}
	if signature == "" {
		return fmt.Errorf("%w: missing %s header", ErrInvalidSignature, github.SHA256SignatureHeader)
	}
	if err := github.ValidateSignature(signature, payload, []byte(v.config.Secret)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return nil
}

// ValidateIPAddress checks ip against the allowlist. An empty list allows all.
func (v *SecurityValidator) ValidateIPAddress(ip string) error {
	if len(v.allowIPs) == 0 && len(v.allowNets) == 0 {
		return nil
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		// gin may hand back host:port when RemoteAddr is unusual
		host, _, splitErr := net.SplitHostPort(ip)
		if splitErr != nil {
			return fmt.Errorf("%w: unparseable IP %q", ErrForbiddenSource, ip)
		}
		if addr, err = netip.ParseAddr(host); err != nil {
			return fmt.Errorf("%w: unparseable IP %q", ErrForbiddenSource, ip)
		}
	}
	addr = addr.Unmap()

	if lo.Contains(v.allowIPs, addr) {
		return nil
	}
	if lo.ContainsBy(v.allowNets, func(p netip.Prefix) bool { return p.Contains(addr) }) {
		return nil
	}
	return fmt.Errorf("%w: IP %s not whitelisted", ErrForbiddenSource, ip)
}

// CheckRateLimit enforces the per-source rate limit.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	if v.rateLimiter == nil {
		return nil
	}
	return v.rateLimiter.Allow(source)
}

// rateLimiter keeps one token bucket per source; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
