package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/src/auth"
	"portfolio-api/src/utils"
)

func requestWithAuth(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/portfolio/csv", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func TestBearerPresencePolicyAccepts(t *testing.T) {
	policy := auth.BearerPresencePolicy{}

	if err := policy.Validate(requestWithAuth("Bearer some-token")); err != nil {
		t.Fatalf("expected error to be nil: %s", err.Error())
	}
	// Any non-empty token passes, there is no claim validation
	if err := policy.Validate(requestWithAuth("Bearer not.even.a.jwt")); err != nil {
		t.Fatalf("expected error to be nil: %s", err.Error())
	}
}

func TestBearerPresencePolicyRejects(t *testing.T) {
	policy := auth.BearerPresencePolicy{}

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic dXNlcjpwYXNz",
		"empty token":    "Bearer ",
		"blank token":    "Bearer    ",
		"no space":       "Bearer",
	}
	for name, header := range cases {
		err := policy.Validate(requestWithAuth(header))
		if err == nil {
			t.Fatalf("%s: expected an error", name)
		}
		var httpErr *utils.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected a 401 error; got %v", name, err)
		}
	}
}
