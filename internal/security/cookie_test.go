package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-ordering-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCookie_SetReadClear(t *testing.T) {
	cookie := NewRefreshCookie(config.CookieConfig{
		Name:     "refreshToken",
		Path:     "/api/auth",
		SameSite: "strict",
		Secure:   true,
	})

	rec := httptest.NewRecorder()
	cookie.Set(rec, "tok", time.Now().Add(time.Hour))

	res := rec.Result()
	require.Len(t, res.Cookies(), 1)
	set := res.Cookies()[0]
	assert.Equal(t, "refreshToken", set.Name)
	assert.Equal(t, "tok", set.Value)
	assert.Equal(t, "/api/auth", set.Path)
	assert.True(t, set.HttpOnly)
	assert.True(t, set.Secure)
	assert.Equal(t, http.SameSiteStrictMode, set.SameSite)
	assert.InDelta(t, 3600, set.MaxAge, 2)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(set)
	value, ok := cookie.Read(req)
	assert.True(t, ok)
	assert.Equal(t, "tok", value)

	_, ok = cookie.Read(httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))
	assert.False(t, ok)

	rec = httptest.NewRecorder()
	cookie.Clear(rec)
	cleared := rec.Result().Cookies()[0]
	assert.Equal(t, "", cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
	assert.True(t, cleared.HttpOnly)
}
