package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "clinic_session"
	sessionTTL    = 24 * time.Hour
)

// Manager issues and verifies the signed cookie that binds a browser to a
// doctor id. A doctor may hold sessions from any number of clients at once.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue signs a session token for the given doctor id.
func (m *Manager) Issue(doctorID uint64) (string, error) {
	claims := jwt.MapClaims{
		"doctor_id": doctorID,
		"exp":       time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse returns the doctor id bound to a token. It fails for expired tokens
// and for tokens signed with another key.
func (m *Manager) Parse(tokenString string) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return 0, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("unexpected session claims")
	}
	// JWT numbers decode as float64.
	id, ok := claims["doctor_id"].(float64)
	if !ok {
		return 0, errors.New("session token has no doctor id")
	}
	return uint64(id), nil
}

// Set writes the session cookie on the response.
func (m *Manager) Set(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

// Clear removes the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// Token returns the raw session cookie, if the request carries one.
func (m *Manager) Token(c *gin.Context) (string, bool) {
	v, err := c.Cookie(sessionCookie)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}
