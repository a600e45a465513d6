package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// idle clients are forgotten after this long
const visitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token bucket per client address.
type RateLimitMiddleware struct {
	logs     *zap.SugaredLogger
	limit    rate.Limit
	burst    int
	clockNow func() time.Time
	trusted  []netip.Prefix

	mu       sync.Mutex
	visitors map[string]*visitor
	hits     uint64
}

type RateLimitOption func(*RateLimitMiddleware)

// WithTrustedProxies lets the listed proxies name the client through
// X-Real-IP or X-Forwarded-For. Headers from any other peer are ignored.
func WithTrustedProxies(proxies ...netip.Prefix) RateLimitOption {
	return func(m *RateLimitMiddleware) {
		m.trusted = append(m.trusted, proxies...)
	}
}

// NewRateLimitMiddleware allows requestsPerMinute per client. A non-positive
// rate disables limiting.
func NewRateLimitMiddleware(logger *zap.SugaredLogger, requestsPerMinute float64, burst int, opts ...RateLimitOption) *RateLimitMiddleware {
	if burst <= 0 {
		burst = 1
	}
	m := &RateLimitMiddleware{
		logs:     logger,
		limit:    rate.Limit(requestsPerMinute / 60),
		burst:    burst,
		clockNow: time.Now,
		visitors: make(map[string]*visitor),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *RateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		client := m.clientID(r)
		if !m.allow(client) {
			m.logs.Errorw("rate limit exceeded",
				"client", client,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": http.StatusText(http.StatusTooManyRequests),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) allow(client string) bool {
	now := m.clockNow()

	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.visitors[client]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[client] = v
	}
	v.lastSeen = now

	m.hits++
	if m.hits%512 == 0 {
		cutoff := now.Add(-visitorTTL)
		for k, entry := range m.visitors {
			if entry.lastSeen.Before(cutoff) {
				delete(m.visitors, k)
			}
		}
	}

	return v.limiter.AllowN(now, 1)
}

// clientID keys on the connecting peer. Behind a trusted proxy the client is
// the proxy's X-Real-IP or the nearest untrusted X-Forwarded-For hop.
func (m *RateLimitMiddleware) clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer, err := netip.ParseAddr(host)
	if err != nil || !m.isTrusted(peer) {
		return host
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !m.isTrusted(hop) {
			return hop.Unmap().String()
		}
	}
	return host
}

func (m *RateLimitMiddleware) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range m.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
