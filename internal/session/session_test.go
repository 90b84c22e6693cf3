package session

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIssueParseRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue(42)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	id, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected doctor id 42, got %d", id)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	token, err := NewManager("one-secret").Issue(7)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := NewManager("another-secret").Parse(token); err == nil {
		t.Fatalf("expected a token signed with another key to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Parse(token); err == nil {
			t.Fatalf("expected Parse(%q) to fail", token)
		}
	}
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestFlashIsRenderedExactlyOnce(t *testing.T) {
	// Set the flash and capture the cookie it writes.
	c1, w1 := newTestContext(t)
	SetFlash(c1, "تم الحفظ")

	cookies := w1.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("SetFlash wrote no cookie")
	}

	// A request carrying the cookie reads the message and expires it.
	c2, w2 := newTestContext(t)
	for _, ck := range cookies {
		c2.Request.AddCookie(ck)
	}
	if got := TakeFlash(c2); got != "تم الحفظ" {
		t.Fatalf("expected the flash message back, got %q", got)
	}

	expired := false
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == flashCookie && ck.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Fatalf("TakeFlash did not expire the flash cookie")
	}

	// A request without the cookie sees nothing.
	c3, _ := newTestContext(t)
	if got := TakeFlash(c3); got != "" {
		t.Fatalf("expected no flash on a fresh request, got %q", got)
	}
}

func TestSessionCookieLifecycle(t *testing.T) {
	m := NewManager("test-secret")

	c1, w1 := newTestContext(t)
	token, err := m.Issue(9)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	m.Set(c1, token)

	c2, _ := newTestContext(t)
	for _, ck := range w1.Result().Cookies() {
		c2.Request.AddCookie(ck)
	}
	got, ok := m.Token(c2)
	if !ok {
		t.Fatalf("expected the session cookie on the follow-up request")
	}
	if !strings.Contains(got, ".") {
		t.Fatalf("session cookie does not look like a signed token: %q", got)
	}
	id, err := m.Parse(got)
	if err != nil || id != 9 {
		t.Fatalf("round-tripped cookie did not parse to doctor 9: id=%d err=%v", id, err)
	}

	// Clearing writes a deletion cookie.
	c3, w3 := newTestContext(t)
	m.Clear(c3)
	cleared := false
	for _, ck := range w3.Result().Cookies() {
		if ck.Name == sessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("Clear did not expire the session cookie")
	}
}
