package security

import (
	"net/http"
	"time"

	"food-ordering-backend/config"
)

// RefreshCookie : httpOnly cookie с refresh токеном, видимая только на пути refresh/logout
type RefreshCookie struct {
	cfg config.CookieConfig
	now func() time.Time
}

func NewRefreshCookie(cfg config.CookieConfig) *RefreshCookie {
	return &RefreshCookie{cfg: cfg, now: time.Now}
}

func (c *RefreshCookie) Set(w http.ResponseWriter, token string, expiresAt time.Time) {
	maxAge := int(expiresAt.Sub(c.now()).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.Name,
		Value:    token,
		Path:     c.cfg.Path,
		Expires:  expiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: c.cfg.SameSiteMode(),
	})
}

func (c *RefreshCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.Name,
		Value:    "",
		Path:     c.cfg.Path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.cfg.Secure,
		SameSite: c.cfg.SameSiteMode(),
	})
}

func (c *RefreshCookie) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.cfg.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
