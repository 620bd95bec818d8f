package mailer

import (
	"fmt"
	"strconv"
)

const (
	TemplateContactAck         = "contact_ack"
	TemplateOrderConfirmation  = "order_confirmation"
	TemplateReservationConfirm = "reservation_confirmation"
)

func ContactAck(to, name string) Message {
	return Message{
		To:       to,
		Template: TemplateContactAck,
		Subject:  "Thank You for Contacting Us",
		Body: fmt.Sprintf("Dear %s,\n\nThank you for reaching out to us! We will get back to you shortly.\n\nBest regards,\nApna Cafe Team",
			name),
	}
}

func OrderConfirmation(to, orderID string, amount float64) Message {
	return Message{
		To:       to,
		Template: TemplateOrderConfirmation,
		Subject:  "Order Confirmation",
		Body: fmt.Sprintf("Thank you for your order! Your order with Order ID %s has been successfully placed. The total amount is ₹%s. We're preparing your items with care and will notify you once they're ready for pickup or delivery.",
			orderID, strconv.FormatFloat(amount, 'f', -1, 64)),
	}
}

func ReservationConfirmation(to string, reservationID int64, date, timeOfDay string, guests int) Message {
	return Message{
		To:       to,
		Template: TemplateReservationConfirm,
		Subject:  "Reservation Confirmation",
		Body: fmt.Sprintf("Your reservation with reservation ID %d has been successfully made. Here are the details:\n\nDate: %s\nTime: %s\nGuests: %d\n\nWe look forward to serving you at Apna Cafe.",
			reservationID, date, timeOfDay, guests),
	}
}
