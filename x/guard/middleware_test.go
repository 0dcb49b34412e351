package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/allowme/core"
	"github.com/totegamma/allowme/x/matcher"
	"github.com/totegamma/allowme/x/policy"
)

const testPolicy = `{
	"statements": [
		{
			"effect": "allow",
			"identities": ["johndoe"],
			"operations": ["GET"],
			"resources": ["/home/{{identity}}/"]
		}
	]
}`

func buildPolicy(t *testing.T) *policy.Policy[any] {
	t.Helper()

	p, err := policy.FromJSON[any](testPolicy).
		WithMatcher(matcher.NewPrefix[any]()).
		WithDefaultDecision(core.DecisionDenied).
		Build()
	assert.NoError(t, err)
	return p
}

func serve(t *testing.T, identity, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()

	// an upstream authentication middleware would normally set the identity
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if identity != "" {
				c.Set(IdentityCtxKey, identity)
			}
			return next(c)
		}
	})
	e.Use(Enforce(buildPolicy(t)))
	e.Any("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEnforceAllows(t *testing.T) {
	rec := serve(t, "johndoe", http.MethodGet, "/home/johndoe/notes.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestEnforceDeniesForeignResource(t *testing.T) {
	rec := serve(t, "johndoe", http.MethodGet, "/home/other/notes.txt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEnforceDeniesForeignOperation(t *testing.T) {
	rec := serve(t, "johndoe", http.MethodDelete, "/home/johndoe/notes.txt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEnforceDeniesMissingIdentity(t *testing.T) {
	rec := serve(t, "", http.MethodGet, "/home/johndoe/notes.txt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
