package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrWrongIssuer error = errors.New("token issued by another service")

const issuer = "lendboard"

type TokenInfo struct {
	UserName string
	Subject  string
	TTL      time.Duration
}

// JWTService issues and checks HS512 tokens for dashboard users.
type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"iss":      issuer,
		"sub":      data.Subject,
		"iat":      now.Unix(),
		"exp":      now.Add(data.TTL).Unix(),
		"username": data.UserName,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate checks signature, issuer and expiry and returns the claims.
// Expiry is checked against TimeNow.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}
	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T: %w", jwtToken.Claims, ErrTokenNotValid)
	}

	if !claims.VerifyIssuer(issuer, true) {
		return nil, ErrWrongIssuer
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing expiry: %w", ErrTokenNotValid)
	}
	if expiresAt := time.Unix(int64(expVal), 0); !TimeNow().Before(expiresAt) {
		return nil, fmt.Errorf("token expired at %v: %w", expiresAt, ErrTokenExpired)
	}

	return claims, nil
}
