package notification

import (
	"github.com/sirupsen/logrus"

	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// sendEmail is the email channel stub. It logs the rendered message at info
// level on the audit logger so deliveries are traceable.
func sendEmail(msg Message) {
	logger.GetAuditLogger().WithFields(logrus.Fields{
		"messageId": msg.ID,
		"channel":   ChannelEmail,
		"to":        msg.To,
		"subject":   msg.Subject,
		"meta":      msg.Meta,
	}).Info("Email notification sent")
}

// sendSMS is the SMS channel stub.
func sendSMS(msg Message) {
	logger.GetAuditLogger().WithFields(logrus.Fields{
		"messageId": msg.ID,
		"channel":   ChannelSMS,
		"to":        msg.To,
		"meta":      msg.Meta,
	}).Info("SMS notification sent")
}
