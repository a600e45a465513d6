package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"

	"lendboard/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		seenRequestID string
		next          http.Handler
	)

	BeforeEach(func() {
		seenRequestID = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID = middleware.RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("generates an id", func() {
			w := httptest.NewRecorder()
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

			Expect(seenRequestID).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(seenRequestID))
		})

		It("reuses the caller id", func() {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("X-Request-ID", "abc")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(httptest.NewRecorder(), req)

			Expect(seenRequestID).To(Equal("abc"))
		})
	})

	Describe("Logging", func() {
		It("passes the response through", func() {
			w := httptest.NewRecorder()
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("RateLimit", func() {
		serve := func(h http.Handler, remote string) int {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = remote
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w.Code
		}

		It("limits each client on its own", func() {
			limited := middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 1, 2).RateLimit(next)

			Expect(serve(limited, "10.0.0.1:1000")).To(Equal(http.StatusTeapot))
			Expect(serve(limited, "10.0.0.1:1001")).To(Equal(http.StatusTeapot))
			Expect(serve(limited, "10.0.0.1:1002")).To(Equal(http.StatusTooManyRequests))
			Expect(serve(limited, "10.0.0.2:1000")).To(Equal(http.StatusTeapot))
		})

		It("ignores forwarding headers from untrusted peers", func() {
			limited := middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 1, 1).RateLimit(next)

			codes := make([]int, 0, 20)
			for i := range 20 {
				req := httptest.NewRequest("GET", "/", nil)
				req.RemoteAddr = "10.0.0.1:1000"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
				req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
				w := httptest.NewRecorder()
				limited.ServeHTTP(w, req)
				codes = append(codes, w.Code)
			}

			Expect(codes[0]).To(Equal(http.StatusTeapot))
			Expect(codes[1:]).To(HaveEach(http.StatusTooManyRequests))
		})

		Describe("behind a trusted proxy", func() {
			var limited http.Handler

			serveForwarded := func(forwarded string) int {
				req := httptest.NewRequest("GET", "/", nil)
				req.RemoteAddr = "10.0.0.1:1000"
				req.Header.Set("X-Forwarded-For", forwarded)
				w := httptest.NewRecorder()
				limited.ServeHTTP(w, req)
				return w.Code
			}

			BeforeEach(func() {
				limited = middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 1, 1,
					middleware.WithTrustedProxies(netip.MustParsePrefix("10.0.0.0/8")),
				).RateLimit(next)
			})

			It("limits the forwarded client", func() {
				Expect(serveForwarded("203.0.113.7")).To(Equal(http.StatusTeapot))
				Expect(serveForwarded("203.0.113.7")).To(Equal(http.StatusTooManyRequests))
				Expect(serveForwarded("203.0.113.8")).To(Equal(http.StatusTeapot))
			})

			It("does not let the client prepend hops", func() {
				Expect(serveForwarded("1.1.1.1, 203.0.113.7")).To(Equal(http.StatusTeapot))
				Expect(serveForwarded("2.2.2.2, 203.0.113.7")).To(Equal(http.StatusTooManyRequests))
			})

			It("skips trusted hops", func() {
				Expect(serveForwarded("203.0.113.7, 10.1.1.1")).To(Equal(http.StatusTeapot))
				Expect(serveForwarded("203.0.113.7")).To(Equal(http.StatusTooManyRequests))
			})
		})

		It("is disabled by a zero rate", func() {
			unlimited := middleware.NewRateLimitMiddleware(zap.NewNop().Sugar(), 0, 1).RateLimit(next)

			for range 5 {
				Expect(serve(unlimited, "10.0.0.1:1000")).To(Equal(http.StatusTeapot))
			}
		})
	})
})
