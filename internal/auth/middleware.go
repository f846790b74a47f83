package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/models"
)

const userContextKey = "auth.user"

// TokensFromRequest returns the session tokens a request carries: the sid
// cookie first, then an Authorization: Bearer header.
func TokensFromRequest(r *http.Request) []string {
	var tokens []string
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		tokens = append(tokens, c.Value)
	}
	h := r.Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		if tok := strings.TrimSpace(h[7:]); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// AuthenticateRequest resolves the first token on r that names a live
// session, so a stale cookie does not mask a valid bearer token.
func (s *Service) AuthenticateRequest(ctx context.Context, r *http.Request) (models.User, error) {
	for _, token := range TokensFromRequest(r) {
		user, err := s.Authenticate(ctx, token)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, ErrUnauthorized) {
			return models.User{}, err
		}
	}
	return models.User{}, ErrUnauthorized
}

// RequireUser rejects requests without a valid session and stores the user
// on the echo context for handlers.
func (s *Service) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := s.AuthenticateRequest(c.Request().Context(), c.Request())
			if err != nil {
				return err
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the user stored by RequireUser.
func UserFrom(c echo.Context) (models.User, bool) {
	u, ok := c.Get(userContextKey).(models.User)
	return u, ok
}

// UserID returns the authenticated user's id, or "" outside RequireUser.
func UserID(c echo.Context) string {
	u, _ := UserFrom(c)
	return u.ID
}

func (s *Service) setCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Service) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
