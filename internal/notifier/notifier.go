package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/keyring"
	"github.com/julianstephens/daybell/internal/storage"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Permission mirrors the platform notification permission. It is read at
// startup and after an explicit request, never silently mutated otherwise.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Dispatcher is the notification collaborator: fire-and-forget delivery plus
// the permission handshake.
type Dispatcher interface {
	QueryPermission() Permission
	RequestPermission() Permission
	Show(title, body, icon string) error
}

// Notifier delivers notifications through the daybell-tray helper's localhost
// webhook. The tray writes a lockfile with its port, pid, and webhook secret;
// the secret may instead live in the OS keyring.
type Notifier struct {
	store storage.Provider
}

type WebhookPayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Icon       string `json:"icon,omitempty"`
	DurationMs uint32 `json:"duration_ms"`
}

func New(store storage.Provider) *Notifier {
	return &Notifier{store: store}
}

// QueryPermission returns the recorded permission state. An absent or
// unrecognized record reads as default.
func (n *Notifier) QueryPermission() Permission {
	value, err := n.store.Get(constants.KeyPermission)
	if err != nil {
		return PermissionDefault
	}
	switch Permission(value) {
	case PermissionGranted, PermissionDenied:
		return Permission(value)
	default:
		return PermissionDefault
	}
}

// RequestPermission probes the tray helper and records the outcome: granted
// when the tray is running and reachable, denied otherwise.
func (n *Notifier) RequestPermission() Permission {
	result := PermissionDenied
	if _, _, err := n.locateTray(); err == nil {
		result = PermissionGranted
	}

	// Best effort; a failed write leaves the previous record in place.
	_ = n.store.Set(constants.KeyPermission, string(result))
	return result
}

// Show posts a notification to the tray helper. Delivery is fire-and-forget:
// the tray gives no confirmation beyond the HTTP status.
func (n *Notifier) Show(title, body, icon string) error {
	port, secret, err := n.locateTray()
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		ID:         uuid.New().String(),
		Title:      title,
		Body:       body,
		Icon:       icon,
		DurationMs: constants.NotificationDurationMs,
	}

	return sendNotification(port, secret, payload)
}

// Probe checks whether the tray helper is running and reachable without
// sending anything.
func (n *Notifier) Probe() error {
	_, _, err := n.locateTray()
	return err
}

func (n *Notifier) locateTray() (string, string, error) {
	trayConfigDir, err := TrayConfigDir()
	if err != nil {
		return "", "", err
	}

	return findAndValidateTrayProcess(filepath.Join(trayConfigDir, constants.NotifierLockfileName))
}

// TrayConfigDir returns the configuration directory used by the tray helper.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// A settings.json may redirect the lockfile dir
	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

// findAndValidateTrayProcess parses the tray lockfile and confirms the
// recorded process is actually the tray helper. The lockfile is either
// "port|pid|secret" or "port|pid" with the secret held in the OS keyring.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("daybell-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 && len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}

	var secret string
	if len(parts) == 3 {
		secret = strings.TrimSpace(parts[2])
	}
	if secret == "" {
		secret, err = keyring.GetTraySecret()
		if err != nil {
			return "", "", errors.New("tray webhook secret not found in lockfile or keyring")
		}
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("daybell-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}

	return port, secret, nil
}

func sendNotification(port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Daybell-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
