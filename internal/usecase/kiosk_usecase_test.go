package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKioskUC(email, password string) *KioskUseCase {
	return NewKioskUC(&KioskConfig{
		DashboardURL:         "https://admin.example.test/orders",
		ConnectivityInterval: 10 * time.Second,
		ConnectivityFailures: 3,
	}, email, password, &recordingLogger{})
}

func TestIsLoginPage(t *testing.T) {
	assert.True(t, IsLoginPage("https://admin.example.test/login"))
	assert.True(t, IsLoginPage("https://admin.example.test/auth/login?next=/orders"))
	assert.False(t, IsLoginPage("https://admin.example.test/orders"))
}

func TestAutofillScript(t *testing.T) {
	uc := newTestKioskUC("chef@example.test", `p"ss\word`)

	script, ok := uc.AutofillScript("https://admin.example.test/login")
	require.True(t, ok)

	assert.Contains(t, script, `emailField.value = "chef@example.test";`)
	assert.Contains(t, script, `passwordField.value = "p\"ss\\word";`)
	assert.Contains(t, script, `input[name="email"], input[type="email"]`)
	assert.Contains(t, script, `button[type="submit"], button`)
	assert.True(t, strings.HasSuffix(script, "})();"))
}

func TestAutofillScript_NotApplicable(t *testing.T) {
	_, ok := newTestKioskUC("chef@example.test", "secret").AutofillScript("https://admin.example.test/orders")
	assert.False(t, ok)

	_, ok = newTestKioskUC("", "").AutofillScript("https://admin.example.test/login")
	assert.False(t, ok)
}

func TestKioskConfig(t *testing.T) {
	cfg := newTestKioskUC("a", "b").Config()
	assert.Equal(t, "https://admin.example.test/orders", cfg.DashboardURL)
	assert.Equal(t, 3, cfg.ConnectivityFailures)
}
