package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"floreria/internal/models"
)

// Transition refusals. User-facing copy matches the storefront locale.
var (
	errPendingLocked      = errors.New(`el estado "Pendiente" solo puede cambiar cuando el cliente complete el formulario`)
	errIncompleteDelivery = errors.New("información de entrega incompleta")
	errTerminalState      = errors.New("el pedido ya está finalizado o cancelado")
	errCancelNoteRequired = errors.New("por favor ingresa una nota de cancelación")
)

// deliveryTimeSlots is the fixed delivery menu: hourly slots, 11:00 to 22:00.
func deliveryTimeSlots() []string {
	slots := make([]string, 0, 12)
	for hour := 11; hour <= 22; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

func validDeliveryTime(value string) bool {
	for _, slot := range deliveryTimeSlots() {
		if value == slot {
			return true
		}
	}
	return false
}

// hasDeliveryInfo checks the fields an admin transition into confirmed or
// completed requires. Sender details and the card message are collected from
// the customer but not required here.
func hasDeliveryInfo(o *models.Order) bool {
	return o.DeliveryDate != nil &&
		strings.TrimSpace(o.DeliveryTime) != "" &&
		strings.TrimSpace(o.DeliveryAddress) != "" &&
		strings.TrimSpace(o.RecipientName) != "" &&
		strings.TrimSpace(o.RecipientPhone) != ""
}

// nextStatus returns the admin-driven follow-up status, if any. Pending has
// none: only the customer's confirmation form moves an order out of pending.
func nextStatus(current string) (string, bool) {
	switch current {
	case models.StatusInProcess:
		return models.StatusConfirmed, true
	case models.StatusConfirmed:
		return models.StatusCompleted, true
	}
	return "", false
}

// checkAdminTransition validates an admin-requested move to target.
func checkAdminTransition(o *models.Order, target string) error {
	if o.Status == models.StatusPending {
		return errPendingLocked
	}
	if o.IsTerminal() {
		return errTerminalState
	}

	next, ok := nextStatus(o.Status)
	if !ok || next != target {
		return fmt.Errorf("transición no permitida: %s → %s", o.Status, target)
	}

	if target == models.StatusConfirmed || target == models.StatusCompleted {
		if !hasDeliveryInfo(o) {
			return errIncompleteDelivery
		}
	}
	return nil
}

// checkCancellation validates an admin cancellation request.
func checkCancellation(o *models.Order, note string) error {
	if o.Status == models.StatusPending {
		return errPendingLocked
	}
	if o.IsTerminal() {
		return errTerminalState
	}
	if strings.TrimSpace(note) == "" {
		return errCancelNoteRequired
	}
	return nil
}

// timestampField maps a target status to the order field stamped on entry.
func timestampField(status string) string {
	switch status {
	case models.StatusInProcess:
		return "processedAt"
	case models.StatusConfirmed:
		return "confirmedAt"
	case models.StatusCompleted:
		return "completedAt"
	case models.StatusCancelled:
		return "cancelledAt"
	}
	return ""
}

// confirmationInput carries the customer's delivery form.
type confirmationInput struct {
	SenderName        string
	SenderPhone       string
	DeliveryAddress   string
	AddressReferences string
	RecipientName     string
	RecipientPhone    string
	CardMessage       string
	DeliveryDate      time.Time
	DeliveryTime      string
}

// checkConfirmation validates the customer form against an order. Every
// field is mandatory and the delivery date must not precede today.
func checkConfirmation(o *models.Order, in confirmationInput, now time.Time) error {
	if o.Status != models.StatusPending {
		return errors.New("el pedido ya fue confirmado y no admite cambios")
	}

	// checked in form order so the first missing field reported is stable
	required := []struct {
		name, value string
	}{
		{"senderName", in.SenderName},
		{"senderPhone", in.SenderPhone},
		{"deliveryAddress", in.DeliveryAddress},
		{"addressReferences", in.AddressReferences},
		{"recipientName", in.RecipientName},
		{"recipientPhone", in.RecipientPhone},
		{"cardMessage", in.CardMessage},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("campo requerido: %s", field.name)
		}
	}

	if !validDeliveryTime(in.DeliveryTime) {
		return errors.New("hora de entrega fuera del horario (11:00 - 22:00)")
	}

	if in.DeliveryDate.IsZero() {
		return errors.New("campo requerido: deliveryDate")
	}
	if in.DeliveryDate.Before(startOfDay(now)) {
		return errors.New("la fecha de entrega no puede ser anterior a hoy")
	}
	return nil
}

// customerStatusLabel is the tracking-page vocabulary: once confirmed, the
// customer sees the order as in process.
func customerStatusLabel(status string) string {
	switch status {
	case models.StatusPending:
		return "Pendiente"
	case models.StatusConfirmed:
		return "En Proceso"
	case models.StatusCompleted:
		return "Completado"
	case models.StatusCancelled:
		return "Cancelado"
	}
	return status
}

// adminStatusLabel is the back-office vocabulary, where in_process is a
// distinct stage before confirmed.
func adminStatusLabel(status string) string {
	switch status {
	case models.StatusPending:
		return "Pendiente de Información"
	case models.StatusInProcess:
		return "En Proceso"
	case models.StatusConfirmed:
		return "Confirmado"
	case models.StatusCompleted:
		return "Completado"
	case models.StatusCancelled:
		return "Cancelado"
	}
	return status
}
