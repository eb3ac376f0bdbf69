package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/service"
	"github.com/oggyb/muzz-dating/internal/testutil"
	gateway "github.com/oggyb/muzz-dating/internal/transport/http"
)

type envelope struct {
	Result struct {
		Data json.RawMessage `json:"data"`
	} `json:"result"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newGateway(t *testing.T) *gateway.Gateway {
	t.Helper()
	database, _ := testutil.OpenDB(t)
	appCtx := testutil.NewAppContext(t, database)
	g, err := gateway.NewGateway(appCtx, service.New(appCtx))
	require.NoError(t, err)
	return g
}

func do(t *testing.T, g *gateway.Gateway, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := g.App().Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &env), string(body))
	}
	return resp, env
}

func establish(t *testing.T, g *gateway.Gateway, openID string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"openId":"`+openID+`","name":"Test"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Token", testutil.Config().Auth.ServiceToken)

	resp, err := g.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out gateway.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func query(procedure, token, input string) *http.Request {
	target := "/api/trpc/" + procedure
	if input != "" {
		target += "?input=" + url.QueryEscape(input)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func mutate(procedure, token, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/trpc/"+procedure, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestHealth(t *testing.T) {
	g := newGateway(t)
	resp, err := g.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSession_RequiresServiceToken(t *testing.T) {
	g := newGateway(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"openId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Token", "wrong")
	resp, _ := do(t, g, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSession_SetsCookie(t *testing.T) {
	g := newGateway(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"openId":"open-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Token", testutil.Config().Auth.ServiceToken)
	resp, err := g.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testutil.Config().Auth.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	// the cookie alone authenticates
	me := query("auth.me", "", "")
	me.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	_, env := do(t, g, me)
	assert.Contains(t, string(env.Result.Data), `"openId":"open-1"`)
}

func TestMe_AnonymousIsNull(t *testing.T) {
	g := newGateway(t)
	resp, env := do(t, g, query("auth.me", "", ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user":null}`, string(env.Result.Data))
}

func TestProtectedProcedureRequiresSession(t *testing.T) {
	g := newGateway(t)
	resp, env := do(t, g, query("profile.get", "", ""))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestProfileAndDiscoverFlow(t *testing.T) {
	g := newGateway(t)
	alice := establish(t, g, "alice")
	bob := establish(t, g, "bob")

	resp, env := do(t, g, mutate("profile.update", alice, `{"bio":"hi","age":30,"gender":"female","lookingFor":"male"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Error.Message)
	assert.Contains(t, string(env.Result.Data), `"bio":"hi"`)

	resp, _ = do(t, g, mutate("profile.update", bob, `{"gender":"male","lookingFor":"female"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = do(t, g, query("discover.browse", bob, `{"lookingFor":"female"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Error.Message)
	var browse struct {
		Profiles []struct {
			UserID uint64 `json:"userId"`
			Bio    string `json:"bio"`
		} `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(env.Result.Data, &browse))
	require.Len(t, browse.Profiles, 1)
	assert.Equal(t, "hi", browse.Profiles[0].Bio)

	body := `{"targetUserId":` + jsonNumber(browse.Profiles[0].UserID) + `}`
	resp, env = do(t, g, mutate("discover.like", bob, body))
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Error.Message)
	assert.JSONEq(t, `{"success":true}`, string(env.Result.Data))

	resp, env = do(t, g, query("matches.list", alice, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Result.Data), `"status":"`+db.MatchStatusLiked+`"`)
}

func TestCall_Errors(t *testing.T) {
	g := newGateway(t)
	token := establish(t, g, "alice")

	resp, env := do(t, g, query("nope.nothing", token, ""))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	resp, _ = do(t, g, query("discover.like", token, ""))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, env = do(t, g, query("discover.browse", token, `{"lookingFor":"aliens"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	resp, _ = do(t, g, mutate("profile.update", token, `{not json`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout_ClearsSession(t *testing.T) {
	g := newGateway(t)
	token := establish(t, g, "alice")

	resp, env := do(t, g, mutate("auth.logout", token, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, string(env.Result.Data))
	assert.Contains(t, resp.Header.Get("Set-Cookie"), testutil.Config().Auth.CookieName+"=")

	_, env = do(t, g, query("auth.me", token, ""))
	assert.JSONEq(t, `{"user":null}`, string(env.Result.Data))
}

func jsonNumber(n uint64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestNewGateway_RejectsWildcardOrigins(t *testing.T) {
	appCtx := testutil.NewAppContext(t, nil)

	for _, origins := range []string{"", " , ", "*", "http://localhost:3000,*"} {
		appCtx.Config.HTTP.AllowedOrigins = origins
		g, err := gateway.NewGateway(appCtx, service.New(appCtx))
		assert.ErrorIs(t, err, gateway.ErrWildcardOrigins, "origins %q", origins)
		assert.Nil(t, g)
	}

	appCtx.Config.HTTP.AllowedOrigins = " http://localhost:3000 , https://app.example.com"
	g, err := gateway.NewGateway(appCtx, service.New(appCtx))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/trpc/auth.me", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := g.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
