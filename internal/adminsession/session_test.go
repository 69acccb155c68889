package adminsession

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/statefile"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/testkit"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	files, err := statefile.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewManager(backend.NewWithOrigin("http://backend.test"), files)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 200, `{"admin":{"username":"ahmad","role":"admin"}}`)
	defer mt.Install()()

	mgr := newManager(t)

	session, err := mgr.Login(context.Background(), "ahmad", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if session.Username != "ahmad" || session.Role != "admin" {
		t.Fatalf("session = %+v", session)
	}

	claims, err := mgr.Verify(session.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Username != "ahmad" {
		t.Fatalf("claims.Username = %q", claims.Username)
	}
}

func TestLoginRejectedByBackend(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 401, `{"message":"invalid credentials"}`)
	defer mt.Install()()

	mgr := newManager(t)

	if _, err := mgr.Login(context.Background(), "ahmad", "wrong"); err == nil {
		t.Fatal("expected an error from a 401 response")
	}
	if mgr.LoggedIn() {
		t.Fatal("failed login must not leave a session behind")
	}
}

func TestCurrentSurvivesRestart(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 200, `{"user":{"username":"ahmad","role":"admin"}}`)
	defer mt.Install()()

	dir := t.TempDir()
	files, err := statefile.New(dir)
	if err != nil {
		t.Fatal(err)
	}

	first := NewManager(backend.NewWithOrigin("http://backend.test"), files)
	if _, err := first.Login(context.Background(), "ahmad", "secret"); err != nil {
		t.Fatal(err)
	}

	// A fresh manager over the same directory sees the same login.
	reloaded, err := statefile.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	second := NewManager(backend.NewWithOrigin("http://backend.test"), reloaded)

	session, err := second.Current()
	if err != nil {
		t.Fatal(err)
	}
	if session.Username != "ahmad" {
		t.Fatalf("session.Username = %q", session.Username)
	}
}

func TestCurrentDropsTamperedSession(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 200, `{"admin":{"username":"ahmad","role":"admin"}}`)
	defer mt.Install()()

	files, err := statefile.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(backend.NewWithOrigin("http://backend.test"), files)

	session, err := mgr.Login(context.Background(), "ahmad", "secret")
	if err != nil {
		t.Fatal(err)
	}

	session.Token = session.Token + "x"
	if err := files.Put("admin-session", session); err != nil {
		t.Fatal(err)
	}

	if _, err := mgr.Current(); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}

	// The stale record is gone.
	var dummy Session
	found, err := files.Get("admin-session", &dummy)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("tampered session should be deleted")
	}
}

func TestCurrentRejectsExpiredToken(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 200, `{"admin":{"username":"ahmad","role":"admin"}}`)
	defer mt.Install()()

	files, err := statefile.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(backend.NewWithOrigin("http://backend.test"), files)
	mgr.ttl = -time.Minute

	if _, err := mgr.Login(context.Background(), "ahmad", "secret"); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Current(); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	mgr := newManager(t)

	if err := mgr.Logout(); err != nil {
		t.Fatal(err)
	}
	if mgr.LoggedIn() {
		t.Fatal("LoggedIn after logout")
	}
}

func TestChangePassword(t *testing.T) {
	mt := &testkit.MockTransport{}
	mt.Stub("POST", "/admin/login", 200, `{"admin":{"username":"ahmad","role":"admin"}}`)
	mt.Stub("PUT", "/admin/update", 200, `{"message":"updated"}`)
	defer mt.Install()()

	mgr := newManager(t)

	// Requires a live session.
	err := mgr.ChangePassword(context.Background(), "old", "new", "new")
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}

	if _, err := mgr.Login(context.Background(), "ahmad", "old"); err != nil {
		t.Fatal(err)
	}

	err = mgr.ChangePassword(context.Background(), "old", "new", "different")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("err = %v, want ErrPasswordMismatch", err)
	}

	if err := mgr.ChangePassword(context.Background(), "old", "new", "new"); err != nil {
		t.Fatal(err)
	}
	mt.AssertCalled(t, "PUT", "/admin/update")
}
