package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/keyring"
	"github.com/julianstephens/daybell/internal/storage"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p *fakeProcess) Pid() int           { return p.pid }
func (p *fakeProcess) PPid() int          { return 0 }
func (p *fakeProcess) Executable() string { return p.executable }

// mockTrayEnv points the notifier at a temp config dir and a fake tray
// process, restoring the real lookups on cleanup.
func mockTrayEnv(t *testing.T, proc ps.Process) string {
	t.Helper()

	configDir := t.TempDir()
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0700); err != nil {
		t.Fatalf("mkdir tray dir: %v", err)
	}

	origConfig := userConfigDirFunc
	origFind := findProcessFunc
	userConfigDirFunc = func() (string, error) { return configDir, nil }
	findProcessFunc = func(pid int) (ps.Process, error) {
		if proc != nil && proc.Pid() == pid {
			return proc, nil
		}
		return nil, nil
	}
	t.Cleanup(func() {
		userConfigDirFunc = origConfig
		findProcessFunc = origFind
	})

	return trayDir
}

func writeLockfile(t *testing.T, trayDir, content string) {
	t.Helper()
	path := filepath.Join(trayDir, constants.NotifierLockfileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write lockfile: %v", err)
	}
}

func TestQueryPermission(t *testing.T) {
	store := storage.NewMemoryStore()
	n := New(store)

	if got := n.QueryPermission(); got != PermissionDefault {
		t.Fatalf("expected default when unset, got %s", got)
	}

	store.Set(constants.KeyPermission, "granted")
	if got := n.QueryPermission(); got != PermissionGranted {
		t.Fatalf("expected granted, got %s", got)
	}

	store.Set(constants.KeyPermission, "denied")
	if got := n.QueryPermission(); got != PermissionDenied {
		t.Fatalf("expected denied, got %s", got)
	}

	store.Set(constants.KeyPermission, "bogus")
	if got := n.QueryPermission(); got != PermissionDefault {
		t.Fatalf("expected default for unrecognized record, got %s", got)
	}
}

func TestRequestPermissionDeniedWithoutTray(t *testing.T) {
	mockTrayEnv(t, nil)

	store := storage.NewMemoryStore()
	n := New(store)

	if got := n.RequestPermission(); got != PermissionDenied {
		t.Fatalf("expected denied without tray, got %s", got)
	}
	recorded, err := store.Get(constants.KeyPermission)
	if err != nil || recorded != "denied" {
		t.Fatalf("expected denied persisted, got %q (%v)", recorded, err)
	}
}

func TestRequestPermissionGrantedWithTray(t *testing.T) {
	proc := &fakeProcess{pid: 1234, executable: "daybell-tray"}
	trayDir := mockTrayEnv(t, proc)
	writeLockfile(t, trayDir, "4242|1234|s3cret")

	store := storage.NewMemoryStore()
	n := New(store)

	if got := n.RequestPermission(); got != PermissionGranted {
		t.Fatalf("expected granted with tray running, got %s", got)
	}
	recorded, _ := store.Get(constants.KeyPermission)
	if recorded != "granted" {
		t.Fatalf("expected granted persisted, got %q", recorded)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	proc := &fakeProcess{pid: 1234, executable: "daybell-tray"}
	trayDir := mockTrayEnv(t, proc)
	lockfile := filepath.Join(trayDir, constants.NotifierLockfileName)

	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid three part", "4242|1234|s3cret", false},
		{"one part", "4242", true},
		{"four parts", "4242|1234|s3cret|extra", true},
		{"empty port", "|1234|s3cret", true},
		{"non-numeric port", "http|1234|s3cret", true},
		{"port out of range", "70000|1234|s3cret", true},
		{"non-numeric pid", "4242|tray|s3cret", true},
		{"dead pid", "4242|9999|s3cret", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writeLockfile(t, trayDir, tc.content)
			port, secret, err := findAndValidateTrayProcess(lockfile)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.content)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if port != "4242" || secret != "s3cret" {
				t.Fatalf("got port %q secret %q", port, secret)
			}
		})
	}
}

func TestFindAndValidateTrayProcessMissingLockfile(t *testing.T) {
	trayDir := mockTrayEnv(t, nil)
	_, _, err := findAndValidateTrayProcess(filepath.Join(trayDir, constants.NotifierLockfileName))
	if err == nil {
		t.Fatal("expected error without lockfile")
	}
}

func TestFindAndValidateTrayProcessWrongExecutable(t *testing.T) {
	proc := &fakeProcess{pid: 1234, executable: "impostor"}
	trayDir := mockTrayEnv(t, proc)
	writeLockfile(t, trayDir, "4242|1234|s3cret")

	_, _, err := findAndValidateTrayProcess(filepath.Join(trayDir, constants.NotifierLockfileName))
	if err == nil {
		t.Fatal("expected error for non-tray executable")
	}
}

func TestSecretFallsBackToKeyring(t *testing.T) {
	keyring.MockInit()
	if err := keyring.SetTraySecret("ring-secret"); err != nil {
		t.Fatalf("seed keyring: %v", err)
	}

	proc := &fakeProcess{pid: 1234, executable: "daybell-tray"}
	trayDir := mockTrayEnv(t, proc)
	writeLockfile(t, trayDir, "4242|1234")

	_, secret, err := findAndValidateTrayProcess(filepath.Join(trayDir, constants.NotifierLockfileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "ring-secret" {
		t.Fatalf("expected keyring secret, got %q", secret)
	}
}

func TestTrayConfigDirSettingsRedirect(t *testing.T) {
	trayDir := mockTrayEnv(t, nil)

	redirect := t.TempDir()
	settings := `{"settings":{"lockfile_dir":"` + redirect + `"}}`
	if err := os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	got, err := TrayConfigDir()
	if err != nil {
		t.Fatalf("tray config dir: %v", err)
	}
	if got != redirect {
		t.Fatalf("expected redirected dir %q, got %q", redirect, got)
	}
}

func TestShowPostsToTray(t *testing.T) {
	var received WebhookPayload
	var gotSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Daybell-Secret")
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}

	proc := &fakeProcess{pid: 1234, executable: "daybell-tray"}
	trayDir := mockTrayEnv(t, proc)
	writeLockfile(t, trayDir, u.Port()+"|1234|s3cret")

	n := New(storage.NewMemoryStore())
	if err := n.Show("Activity Reminder!", "Gym", ""); err != nil {
		t.Fatalf("show: %v", err)
	}

	if gotSecret != "s3cret" {
		t.Fatalf("expected secret header, got %q", gotSecret)
	}
	if received.Title != "Activity Reminder!" || received.Body != "Gym" {
		t.Fatalf("unexpected payload: %+v", received)
	}
	if received.ID == "" || received.DurationMs != constants.NotificationDurationMs {
		t.Fatalf("payload missing id or duration: %+v", received)
	}
}

func TestShowSurfacesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	proc := &fakeProcess{pid: 1234, executable: "daybell-tray"}
	trayDir := mockTrayEnv(t, proc)
	writeLockfile(t, trayDir, u.Port()+"|1234|wrong")

	n := New(storage.NewMemoryStore())
	if err := n.Show("Title", "Body", ""); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
