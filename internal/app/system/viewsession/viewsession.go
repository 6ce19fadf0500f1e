// internal/app/system/viewsession/viewsession.go
package viewsession

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const viewIDKey = "view_id"

// Manager ties a browser to its dashboard view through a signed cookie.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// New creates a Manager using the provided session key, cookie name and
// domain. The secure flag controls whether cookies are marked Secure and
// which SameSite mode is used.
//
// In production (secure=true), cookies are Secure + SameSite=None.
// In local dev over http://localhost, use secure=false so cookies are accepted.
func New(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("view session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// ViewID returns the view id carried by the request's cookie. When the
// cookie is missing or cannot be decoded a new id is minted and the cookie
// is written to w, so ViewID must run before the response body is written.
func (m *Manager) ViewID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// A tampered or stale cookie still yields a fresh session.
		m.log.Debug("view session cookie rejected", zap.Error(err))
	}

	if id, ok := sess.Values[viewIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	sess.Values[viewIDKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("save view session: %w", err)
	}
	return id, nil
}

// Peek returns the view id on the request without minting one.
func (m *Manager) Peek(r *http.Request) (string, bool) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return "", false
	}
	id, ok := sess.Values[viewIDKey].(string)
	return id, ok && id != ""
}
