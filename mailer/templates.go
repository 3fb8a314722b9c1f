package mailer

import (
	"fmt"
	"strings"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

func OrderConfirmationSubject(orderID uint) string {
	return fmt.Sprintf("Order #%d confirmed", orderID)
}

func OrderCancellationSubject(orderID uint) string {
	return fmt.Sprintf("Order #%d cancelled", orderID)
}

func ReturnRequestSubject(orderID uint) string {
	return fmt.Sprintf("Return requested for order #%d", orderID)
}

func OrderConfirmationBody(order models.Order, userName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", displayName(userName))
	fmt.Fprintf(&b, "Thanks for your purchase! Your order #%d has been confirmed.\n\n", order.ID)
	writeOrderItems(&b, order.Items)
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalAmount)
	fmt.Fprintf(&b, "Shipping to: %s\n\n", order.Address)
	b.WriteString("We will email you when your order ships.\n")
	return b.String()
}

func OrderPlacedAlertBody(order models.Order, userName, userEmail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d placed by %s (%s).\n\n", order.ID, displayName(userName), userEmail)
	writeOrderItems(&b, order.Items)
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalAmount)
	fmt.Fprintf(&b, "Payment ref: %s\n", order.PaymentID)
	fmt.Fprintf(&b, "Shipping to: %s\n", order.Address)
	return b.String()
}

func OrderCancellationBody(order models.Order, userName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", displayName(userName))
	fmt.Fprintf(&b, "Your order #%d has been cancelled.\n\n", order.ID)
	writeOrderItems(&b, order.Items)
	fmt.Fprintf(&b, "\nTotal: %.2f\n\n", order.TotalAmount)
	b.WriteString("Refund processing is manual and takes 3-5 business days.\n")
	return b.String()
}

func OrderCancellationAlertBody(order models.Order, userName, userEmail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d was cancelled by %s (%s).\n\n", order.ID, displayName(userName), userEmail)
	writeOrderItems(&b, order.Items)
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalAmount)
	b.WriteString("Process the refund manually (3-5 business days).\n")
	return b.String()
}

func ReturnRequestBody(req models.ReturnRequest, userName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", displayName(userName))
	fmt.Fprintf(&b, "We received your return request for order #%d.\n\n", req.OrderID)
	fmt.Fprintf(&b, "Reason: %s\n\n", req.Reason)
	writeReturnItems(&b, req.Items)
	b.WriteString("\nOur team will review the request and get back to you.\n")
	return b.String()
}

func ReturnRequestAlertBody(req models.ReturnRequest, userName, userEmail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Return requested for order #%d by %s (%s).\n\n", req.OrderID, displayName(userName), userEmail)
	fmt.Fprintf(&b, "Reason: %s\n\n", req.Reason)
	writeReturnItems(&b, req.Items)
	return b.String()
}

func OTPBody(code string) string {
	return fmt.Sprintf("Your password reset code is %s.\nIt expires in 10 minutes. If you did not request this, ignore this email.\n", code)
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

func writeOrderItems(b *strings.Builder, items []models.OrderItem) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s (size %s) x%d @ %.2f\n", item.ProductName, item.Size, item.Quantity, item.Price)
	}
}

func writeReturnItems(b *strings.Builder, items []models.ReturnItem) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s (size %s) x%d\n", item.ProductName, item.Size, item.Quantity)
	}
}
