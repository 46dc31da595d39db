package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts and mails the configured
// recipient so someone restocks before the kitchen runs dry.

import (
	"context"
	"encoding/json"
	"fmt"

	"invencost/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertWorker sends low-stock alert emails via SMTP.
type AlertWorker struct {
	mailer *infra.Mailer
	to     string
}

// NewAlertWorker creates an AlertWorker mailing the given recipient.
func NewAlertWorker(mailer *infra.Mailer, to string) *AlertWorker {
	return &AlertWorker{mailer: mailer, to: to}
}

// Process mails one alert. Returns the SMTP error so the pool can retry.
func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return nil // malformed payloads never become valid, do not retry
	}
	if w.to == "" {
		log.Warn().Msg("alert_worker: no ALERT_EMAIL configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.Name)
	body := fmt.Sprintf(
		"El ingrediente %q está por debajo del umbral de stock.\n\nStock actual: %s %s\n\nReponga existencias cuanto antes.",
		payload.Name, payload.CurrentStock.String(), payload.Unit,
	)
	if err := w.mailer.SendAlert(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("to", w.to).Uint("ingredient_id", payload.IngredientID).
			Msg("alert_worker: failed to send alert email")
		return err
	}
	log.Info().Str("to", w.to).Str("ingredient", payload.Name).Msg("alert_worker: low-stock alert sent")
	return nil
}
