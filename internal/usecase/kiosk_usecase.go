package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
)

const loginPageMarker = "login"

const autofillTemplate = `(function() {
    const emailField = document.querySelector('input[name="email"], input[type="email"]');
    const passwordField = document.querySelector('input[name="password"], input[type="password"]');
    const submitBtn = document.querySelector('button[type="submit"], button');

    if (emailField && passwordField && submitBtn) {
        emailField.value = %s;
        passwordField.value = %s;
        emailField.dispatchEvent(new Event('input', { bubbles: true }));
        passwordField.dispatchEvent(new Event('input', { bubbles: true }));
        setTimeout(() => {
            submitBtn.click();
            console.log("Login form submitted");
        }, 0);
    } else {
        console.log("Login form elements not found");
    }
})();`

// KioskUseCase отдаёт оболочке браузера настройки панели и скрипт автовхода.
type KioskUseCase struct {
	cfg      *KioskConfig
	email    string
	password string
	logger   logger.Logger
}

func NewKioskUC(cfg *KioskConfig, email, password string, logger logger.Logger) *KioskUseCase {
	return &KioskUseCase{
		cfg:      cfg,
		email:    email,
		password: password,
		logger:   logger,
	}
}

func (k *KioskUseCase) Config() *KioskConfig {
	return k.cfg
}

// IsLoginPage сообщает, что по адресу открыта страница входа.
func IsLoginPage(pageURL string) bool {
	return strings.Contains(pageURL, loginPageMarker)
}

// AutofillScript возвращает скрипт, заполняющий и отправляющий форму входа.
// Возвращает false, если это не страница входа или учётные данные не заданы.
func (k *KioskUseCase) AutofillScript(pageURL string) (string, bool) {
	if !IsLoginPage(pageURL) {
		return "", false
	}

	if k.email == "" || k.password == "" {
		k.logger.Warnf("Login page detected but kiosk credentials are not configured")
		return "", false
	}

	k.logger.Infof("Login page detected, injecting script: %s", pageURL)
	return fmt.Sprintf(autofillTemplate, jsString(k.email), jsString(k.password)), true
}

// jsString кодирует строку как JS-литерал.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
