package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tailor-backend/internal/shared/server/respond"
)

// BasicAuthGate holds the configured credentials. The password is stored only
// as a bcrypt hash computed at startup.
type BasicAuthGate struct {
	username     string
	passwordHash []byte
}

// NewBasicAuthGate hashes the configured password and returns the gate.
// Returns nil when no credentials are configured, meaning no auth is enforced.
func NewBasicAuthGate(username, password string) (*BasicAuthGate, error) {
	if username == "" || password == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &BasicAuthGate{username: username, passwordHash: hash}, nil
}

// Middleware validates the Authorization header against the configured pair.
func (g *BasicAuthGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !g.verify(user, pass) {
			c.Header("WWW-Authenticate", `Basic realm="restricted"`)
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
			return
		}
		c.Next()
	}
}

func (g *BasicAuthGate) verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
	return userOK && passOK
}
