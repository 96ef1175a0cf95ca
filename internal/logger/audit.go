package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction describes one audited action.
type AuditAction struct {
	Action       string                 `json:"action"`        // e.g. "lead_status_change", "client_create"
	UserID       string                 `json:"user_id"`       // acting user
	ResourceID   string                 `json:"resource_id"`   // affected resource
	ResourceType string                 `json:"resource_type"` // e.g. "lead", "campaign"
	IP           string                 `json:"ip"`
	UserAgent    string                 `json:"user_agent"`
	Details      map[string]interface{} `json:"details"`
	Timestamp    time.Time              `json:"timestamp"`
}

// LogAction writes an audit entry for the current request.
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if userID := c.Locals("userId"); userID != nil {
		if uid, ok := userID.(string); ok {
			audit.UserID = uid
		}
	}

	if clientID := c.Locals("clientId"); clientID != nil {
		if cid, ok := clientID.(string); ok {
			audit.Details["client_id"] = cid
		}
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":     audit.Action,
		"user_id":    audit.UserID,
		"ip":         audit.IP,
		"user_agent": audit.UserAgent,
		"details":    audit.Details,
		"timestamp":  audit.Timestamp,
	}).Info("Audit log")
}

// WithRequest returns an app logger entry annotated with request metadata.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
		"request_id": c.Get("X-Request-ID"),
	})
}
