package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

var errInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenIssuer signs and verifies HS256 access tokens carrying the actor identity.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *TokenIssuer) Issue(u newsportal.User) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: u.Username,
		Role:     string(u.Role),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

func (t *TokenIssuer) Parse(token string) (newsportal.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return newsportal.Actor{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return newsportal.Actor{}, errInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return newsportal.Actor{}, fmt.Errorf("%w: bad subject %q", errInvalidToken, claims.Subject)
	}

	role, err := newsportal.ParseRole(claims.Role)
	if err != nil {
		return newsportal.Actor{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	return newsportal.Actor{UserID: userID, Username: claims.Username, Role: role}, nil
}

// Authenticate puts the actor of a valid bearer token into the request context. Requests without
// an Authorization header continue anonymously; invalid tokens are rejected.
func (t *TokenIssuer) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "bearer token required"})
		}

		actor, err := t.Parse(strings.TrimSpace(token))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": errInvalidToken.Error()})
		}

		r := c.Request()
		c.SetRequest(r.WithContext(newsportal.WithActor(r.Context(), actor)))

		return next(c)
	}
}
