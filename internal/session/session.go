package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"openhiring/internal/config"
	"openhiring/internal/logging"
)

// Manager stores admin session markers and one-shot flash notices in
// redis, keyed by a cookie-carried session ID. There is no other
// cross-request state.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// AdminSession marks an authenticated back-office user.
type AdminSession struct {
	AdminID    uint      `json:"admin_id"`
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Flash is a one-shot notice rendered on the next page only.
type Flash struct {
	Type    string `json:"type"` // success, error, info
	Message string `json:"message"`
}

// NewManager creates a new session manager backed by redis.
func NewManager(cfg *config.Config) *Manager {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &Manager{
		client: redis.NewClient(opts),
		ttl:    cfg.Session.TTL,
		logger: logging.GetGlobalLogger(),
	}
}

// NewSessionID mints a fresh cookie value.
func (m *Manager) NewSessionID() string {
	return uuid.New().String()
}

// Ping tests the redis connection.
func (m *Manager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

// Close closes the redis connection.
func (m *Manager) Close() error {
	return m.client.Close()
}

// LoginAdmin records an authenticated admin against the session ID.
func (m *Manager) LoginAdmin(ctx context.Context, sessionID string, adminID uint, username string) error {
	sess := AdminSession{
		AdminID:    adminID,
		Username:   username,
		LoggedInAt: time.Now(),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}

	if err := m.client.Set(ctx, m.adminKey(sessionID), payload, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store admin session: %w", err)
	}
	return nil
}

// Admin returns the authenticated admin for the session, if any.
func (m *Manager) Admin(ctx context.Context, sessionID string) (*AdminSession, bool) {
	if sessionID == "" {
		return nil, false
	}

	payload, err := m.client.Get(ctx, m.adminKey(sessionID)).Result()
	if err != nil {
		if err != redis.Nil {
			m.logger.Warn("Failed to read admin session", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var sess AdminSession
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

// LogoutAdmin drops the admin marker for the session.
func (m *Manager) LogoutAdmin(ctx context.Context, sessionID string) error {
	return m.client.Del(ctx, m.adminKey(sessionID)).Err()
}

// SetFlash stores a one-shot notice for the session.
func (m *Manager) SetFlash(ctx context.Context, sessionID, flashType, message string) {
	payload, err := json.Marshal(Flash{Type: flashType, Message: message})
	if err != nil {
		return
	}

	if err := m.client.Set(ctx, m.flashKey(sessionID), payload, m.ttl).Err(); err != nil {
		// A lost flash notice is cosmetic; log and move on.
		m.logger.Warn("Failed to store flash notice", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// PopFlash returns the pending notice and clears it, so it renders on
// exactly one page.
func (m *Manager) PopFlash(ctx context.Context, sessionID string) *Flash {
	if sessionID == "" {
		return nil
	}

	payload, err := m.client.GetDel(ctx, m.flashKey(sessionID)).Result()
	if err != nil {
		if err != redis.Nil {
			m.logger.Warn("Failed to read flash notice", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}

	var flash Flash
	if err := json.Unmarshal([]byte(payload), &flash); err != nil {
		return nil
	}
	return &flash
}

func (m *Manager) adminKey(sessionID string) string {
	return fmt.Sprintf("session:admin:%s", sessionID)
}

func (m *Manager) flashKey(sessionID string) string {
	return fmt.Sprintf("session:flash:%s", sessionID)
}
