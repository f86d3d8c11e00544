package session

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"authsite/internal/pkg/logx"
)

const valueUserID = "uid"

// CookieManager stores the session in a gorilla/sessions CookieStore.
type CookieManager struct {
	store *sessions.CookieStore
}

// NewCookieManager derives an HMAC-SHA512 hash key and an AES-256 block key from opts.Secret.
func NewCookieManager(opts Options) *CookieManager {
	hashKey := sha512.Sum512([]byte("authsite/session/hash:" + opts.Secret))
	blockKey := sha256.Sum256([]byte("authsite/session/block:" + opts.Secret))

	store := sessions.NewCookieStore(hashKey[:], blockKey[:])
	// MaxAge also bounds the timestamp securecookie accepts on decode.
	store.MaxAge(int(opts.MaxAge.Seconds()))

	base := baseCookie(opts)
	store.Options.Path = base.Path
	store.Options.HttpOnly = base.HttpOnly
	store.Options.Secure = base.Secure
	store.Options.SameSite = base.SameSite

	return &CookieManager{store: store}
}

func (m *CookieManager) Establish(w http.ResponseWriter, r *http.Request, userID int64) error {
	// A cookie that fails to decode still yields a fresh session to overwrite.
	sess, _ := m.store.New(r, CookieName)

	sess.Values[valueUserID] = userID
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (m *CookieManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.New(r, CookieName)

	sess.Values = make(map[interface{}]interface{})
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (m *CookieManager) Resolve(r *http.Request) (int64, bool) {
	sess, err := m.store.New(r, CookieName)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			logx.Ctx(r.Context()).Warn().Err(err).Msg("Invalid or expired session cookie, treating as anonymous")
		}
		return 0, false
	}

	userID, ok := sess.Values[valueUserID].(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
