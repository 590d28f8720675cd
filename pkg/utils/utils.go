package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/praslar/lib/common"
	"github.com/sendgrid/rest"
	"github.com/sirupsen/logrus"

	"agrifresh/ms-marketplace/conf"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func VerifyPassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// ShortID trims a hex document id down to the length used in user-facing
// notification messages.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type NotificationEvent struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// PushNotificationEvent mirrors every notification to the configured webhook.
// Fire-and-forget: failures are logged and never returned to the caller.
func PushNotificationEvent(event NotificationEvent) {
	url := conf.LoadEnv().NotifyWebhook
	if url == "" {
		return
	}
	if _, _, err := common.SendRestAPI(url, rest.Post, nil, nil, event); err != nil {
		logrus.Errorf("Fail to push notification event to webhook due to %v", err)
	}
}
