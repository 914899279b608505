package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionCfg holds configuration for session middleware.
type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// Session is a database-backed admin session. The cookie carries only the
// opaque session ID; everything else lives server-side. Expiry is fixed at
// creation, there is no renewal on activity.
type Session struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	AdminID   uint      `gorm:"not null;index:ix_sessions_admin_id"`
	Username  string    `gorm:"size:64;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Session) TableName() string { return "sessions" }

// SessionMiddleware loads the session row named by the cookie and puts the
// admin identity into the request context. Missing or expired sessions are the
// normal logged-out path, not an error.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&sess).Error; err != nil {
			// Geçersiz ya da süresi dolmuş: cookie'yi temizle
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		c.Set("session", &sess)
		c.Set("admin_id", sess.AdminID)
		c.Set("admin_username", sess.Username)

		c.Next()
	}
}

// CreateSession opens a new session for the given admin and returns it.
func CreateSession(cfg SessionCfg, adminID uint, username string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		Username:  username,
		ExpiresAt: time.Now().Add(cfg.TTL),
		CreatedAt: time.Now(),
	}
	if err := cfg.DB.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSession removes a session by ID. Deleting a missing session is fine.
func DeleteSession(cfg SessionCfg, sessionID string) error {
	return cfg.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

// ContextAdmin is the authenticated admin carried in the request context.
type ContextAdmin struct {
	ID       uint
	Username string
}

// CurrentAdmin retrieves the authenticated admin from the gin context.
// Returns the admin and true when logged in, zero value and false otherwise.
func CurrentAdmin(c *gin.Context) (ContextAdmin, bool) {
	idVal, exists := c.Get("admin_id")
	if !exists {
		return ContextAdmin{}, false
	}
	id, ok := idVal.(uint)
	if !ok || id == 0 {
		return ContextAdmin{}, false
	}

	var username string
	if v, ok := c.Get("admin_username"); ok && v != nil {
		username, _ = v.(string)
	}

	return ContextAdmin{ID: id, Username: username}, true
}

// CurrentSession returns the raw session row, when one was loaded.
func CurrentSession(c *gin.Context) (*Session, bool) {
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(*Session); ok {
			return s, true
		}
	}
	return nil, false
}
