package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/utils"
)

func issueToken(t *testing.T, ttlMin int) string {
	t.Helper()
	tok, err := utils.NewAccessToken("test-secret", 1, "vendedor1", ttlMin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok.Token
}

func TestNewReadsExpiryFromToken(t *testing.T) {
	s := New(issueToken(t, 60), model.User{Username: "vendedor1"})

	if s.ExpiresAt.IsZero() {
		t.Fatal("expiry must be read from the exp claim")
	}
	if s.Expired() {
		t.Fatal("a one-hour token must not be expired")
	}
	until := time.Until(s.ExpiresAt)
	if until < 55*time.Minute || until > 65*time.Minute {
		t.Fatalf("expiry %v from now, want about an hour", until)
	}
}

func TestExpiredToken(t *testing.T) {
	s := New(issueToken(t, -1), model.User{})
	if !s.Expired() {
		t.Fatal("a token expired a minute ago must report expired")
	}
}

func TestOpaqueTokenNeverExpires(t *testing.T) {
	s := New("not-a-jwt", model.User{})
	if !s.ExpiresAt.IsZero() {
		t.Fatalf("opaque token expiry = %v, want zero", s.ExpiresAt)
	}
	if s.Expired() {
		t.Fatal("sessions without a known expiry never report expired")
	}
}

func TestTransportAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	var sess *Session
	hc := &http.Client{Transport: &Transport{Source: func() *Session { return sess }}}

	resp, err := hc.Get(srv.URL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if gotAuth != "" {
		t.Fatalf("Authorization = %q before login, want empty", gotAuth)
	}

	sess = New("tok-123", model.User{})
	resp, err = hc.Get(srv.URL)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestTransportDoesNotMutateOriginalRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(srv.Close)

	sess := New("tok-abc", model.User{})
	tr := &Transport{Source: func() *Session { return sess }}

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := tr.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	resp.Body.Close()
	if req.Header.Get("Authorization") != "" {
		t.Fatal("the caller's request must stay untouched")
	}
}
