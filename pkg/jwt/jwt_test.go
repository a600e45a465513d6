package jwt_test

import (
	"time"

	tokenIssuer "lendboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("secret"))
		info = tokenIssuer.TokenInfo{UserName: "alice", Subject: "user-1", TTL: 24 * time.Hour}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("validates the tokens it signs", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("alice"))
	})

	It("rejects tokens signed with another secret", func() {
		signed, err := tokenIssuer.NewJWTService([]byte("other")).Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects tokens with another signing method", func() {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects tokens of another issuer", func() {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"iss": "someone-else",
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := service.Sign(foreign)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrWrongIssuer))
	})

	It("reports expired tokens", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(48 * time.Hour) }

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})
})
