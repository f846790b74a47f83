package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akyairhashvil/momentum/internal/contract"
)

// Mount registers the account routes on g.
func (s *Service) Mount(g *echo.Group) {
	g.POST("/register", s.handleRegister)
	g.POST("/login", s.handleLogin)
	g.POST("/logout", s.handleLogout)
	g.GET("/auth/user", s.handleCurrentUser, s.RequireUser())
}

func (s *Service) handleRegister(c echo.Context) error {
	var req contract.RegisterRequest
	if err := contract.DecodeJSON(c.Request().Body, &req); err != nil {
		return err
	}
	sess, err := s.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	s.setCookie(c, sess.Token, sess.ExpiresAt)
	return c.JSON(http.StatusCreated, sess)
}

func (s *Service) handleLogin(c echo.Context) error {
	var req contract.LoginRequest
	if err := contract.DecodeJSON(c.Request().Body, &req); err != nil {
		return err
	}
	sess, err := s.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	s.setCookie(c, sess.Token, sess.ExpiresAt)
	return c.JSON(http.StatusOK, sess)
}

func (s *Service) handleLogout(c echo.Context) error {
	for _, token := range TokensFromRequest(c.Request()) {
		if err := s.Logout(c.Request().Context(), token); err != nil {
			return err
		}
	}
	s.clearCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (s *Service) handleCurrentUser(c echo.Context) error {
	user, ok := UserFrom(c)
	if !ok {
		return ErrUnauthorized
	}
	return c.JSON(http.StatusOK, user)
}
