package jwt

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arkode/arkode-backend/pkg/auth"
)

// Verification failure reasons. The middleware treats them all the same
// (reject with 401) but they stay distinguishable for logging.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
	ErrMissingSubject = errors.New("token subject missing or malformed")
)

// Issuer creates signed HS256 access tokens.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

func (g *Issuer) TTL() time.Duration { return g.ttl }

// Issue signs a token whose subject is the user's numeric id.
func (g *Issuer) Issue(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Subject:   strconv.FormatInt(user.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verifier checks token signatures and expiry against the shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates the token, returning the subject user id.
// It never panics; every failure maps onto one of the package errors above.
func (v *Verifier) Verify(tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return 0, ErrTokenSignature
	}
	// A token without a usable subject is worthless even if the signature
	// checks out.
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.Subject == "" {
		return 0, ErrMissingSubject
	}
	return userID, nil
}
