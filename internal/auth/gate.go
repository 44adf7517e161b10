package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrInvalidPIN = errors.New("invalid pin")

// Gate guards the API behind a PIN shared by both users. Sessions live in
// memory and are lost on restart.
type Gate struct {
	pin      string
	mu       sync.RWMutex
	sessions map[string]struct{}
	newToken func() string
}

func NewGate(pin string) *Gate {
	return &Gate{
		pin:      pin,
		sessions: make(map[string]struct{}),
		newToken: uuid.NewString,
	}
}

// Login returns a fresh session token when pin matches.
func (g *Gate) Login(pin string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(g.pin)) != 1 {
		return "", ErrInvalidPIN
	}

	token := g.newToken()
	g.mu.Lock()
	g.sessions[token] = struct{}{}
	g.mu.Unlock()
	return token, nil
}

func (g *Gate) Logout(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

func (g *Gate) Valid(token string) bool {
	if token == "" {
		return false
	}
	g.mu.RLock()
	_, ok := g.sessions[token]
	g.mu.RUnlock()
	return ok
}

func bearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// RequestToken extracts the session token from a plain net/http request,
// preferring the Authorization header over the token query parameter.
func RequestToken(r *http.Request) string {
	if t := bearer(r.Header.Get("Authorization")); t != "" {
		return t
	}
	return r.URL.Query().Get("token")
}

func fiberToken(c *fiber.Ctx) string {
	if t := bearer(c.Get(fiber.HeaderAuthorization)); t != "" {
		return t
	}
	return c.Query("token")
}

type LoginRequest struct {
	PIN string `json:"pin" example:"1234"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"unauthorized"`
	Message string `json:"message,omitempty"`
}

// Require rejects requests without a live session token.
func (g *Gate) Require() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.Valid(fiberToken(c)) {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error: "unauthorized",
			})
		}
		return c.Next()
	}
}

// HandleLogin godoc
// @Summary Unlock with the shared PIN
// @Description Exchanges the shared PIN for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "PIN"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (g *Gate) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	token, err := g.Login(req.PIN)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "invalid_pin",
			Message: "incorrect PIN",
		})
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{Token: token})
}

// HandleLogout godoc
// @Summary Lock the session
// @Tags Auth
// @Security PinToken
// @Success 204
// @Router /api/logout [post]
func (g *Gate) HandleLogout(c *fiber.Ctx) error {
	g.Logout(fiberToken(c))
	return c.SendStatus(http.StatusNoContent)
}
