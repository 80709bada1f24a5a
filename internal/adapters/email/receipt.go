package email

import (
	"fmt"
	"time"
)

// PaymentReceipt holds the fields rendered into a receipt email.
type PaymentReceipt struct {
	MemberName    string
	TransactionID string
	PackageName   string
	Method        string
	Amount        float64
	PaidAt        time.Time
	ExpiresAt     time.Time
}

// BuildReceipt renders a payment receipt into a SendRequest for the
// given recipient.
func BuildReceipt(to string, r PaymentReceipt) SendRequest {
	html := fmt.Sprintf(`<h2>Payment received</h2>
<p>Hi %s,</p>
<p>Thanks for your payment. Here are the details:</p>
<ul>
  <li>Transaction: <strong>%s</strong></li>
  <li>Package: %s</li>
  <li>Method: %s</li>
  <li>Amount: $%.2f</li>
  <li>Paid: %s</li>
</ul>
<p>Your membership is now active until <strong>%s</strong>.</p>`,
		r.MemberName,
		r.TransactionID,
		r.PackageName,
		r.Method,
		r.Amount,
		r.PaidAt.Format("2 January 2006"),
		r.ExpiresAt.Format("2 January 2006"),
	)
	return SendRequest{
		To:      []string{to},
		Subject: fmt.Sprintf("Payment receipt %s", r.TransactionID),
		HTML:    html,
	}
}
