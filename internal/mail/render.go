package mail

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
)

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"lineTotal": func(li domain.LineItem) string {
		return li.Total().StringFixed(2)
	},
}

type receiptData struct {
	Order     domain.Order
	Reference string
	OrderDate string
}

func newReceiptData(order domain.Order) receiptData {
	ref := order.PayPalOrderID
	if ref == "" {
		ref = order.ID
	}
	return receiptData{
		Order:     order,
		Reference: ref,
		OrderDate: time.Now().Format("January 2, 2006"),
	}
}

// RenderCustomerReceipt produces the itemized order confirmation sent to
// the customer.
func RenderCustomerReceipt(order domain.Order) (string, error) {
	var buf bytes.Buffer
	if err := customerTmpl.Execute(&buf, newReceiptData(order)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderStoreAlert produces the new-order notification sent to the store
// operator, including the action-required banner.
func RenderStoreAlert(order domain.Order) (string, error) {
	var buf bytes.Buffer
	if err := storeTmpl.Execute(&buf, newReceiptData(order)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var customerTmpl = template.Must(template.New("customer").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #000; color: #fff; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; background: white; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>PENJULUM</h1>
      <p>Thank You For Your Order!</p>
    </div>
    <div class="content">
      <h2>Order Confirmation</h2>
      <p>Hi {{.Order.CustomerName}},</p>
      <p>Thank you for your purchase! Your order has been confirmed and will be processed shortly.</p>

      <h3>Order Details</h3>
      <p><strong>Order ID:</strong> {{.Reference}}</p>
      <p><strong>Order Date:</strong> {{.OrderDate}}</p>

      <h3>Shipping Address</h3>
      <p>
        {{.Order.CustomerName}}<br>
        {{.Order.CustomerAddress}}<br>
        {{.Order.CustomerCity}}, {{.Order.CustomerState}} {{.Order.CustomerZip}}<br>
        {{.Order.CustomerPhone}}
      </p>

      <h3>Items Ordered</h3>
      <table>
        <thead>
          <tr style="background: #f0f0f0;">
            <th style="padding: 10px; text-align: left;">Image</th>
            <th style="padding: 10px; text-align: left;">Product</th>
            <th style="padding: 10px; text-align: center;">Qty</th>
            <th style="padding: 10px; text-align: right;">Price</th>
          </tr>
        </thead>
        <tbody>
          {{range .Order.Items}}
          <tr>
            <td style="padding: 10px; border-bottom: 1px solid #ddd;">
              <img src="{{.ProductImage}}" alt="{{.ProductName}}" style="width: 60px; height: 60px; object-fit: cover;">
            </td>
            <td style="padding: 10px; border-bottom: 1px solid #ddd;">
              {{.ProductName}}<br>
              <small>Size: {{.Size}} | Color: {{.Color}}</small>
            </td>
            <td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: right;">${{lineTotal .}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>

      <div style="text-align: right; padding: 20px; background: white;">
        <p><strong>Subtotal:</strong> ${{money .Order.Subtotal}}</p>
        <p><strong>Shipping:</strong> ${{money .Order.Shipping}}</p>
        <p style="font-size: 20px; color: #000;"><strong>Total:</strong> ${{money .Order.Total}}</p>
      </div>

      <p style="margin-top: 30px;">We'll send you tracking information once your order ships.</p>

      <p style="margin-top: 30px;">
        <strong>Wear Your Story,</strong><br>
        The Penjulum Team
      </p>
    </div>
  </div>
</body>
</html>
`))

var storeTmpl = template.Must(template.New("store").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; background: #f9f9f9; }
    .alert { background: #4CAF50; color: white; padding: 15px; margin-bottom: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="alert">
      <h2>New Order Received!</h2>
    </div>

    <h3>Order Information</h3>
    <p><strong>Order ID:</strong> {{.Reference}}</p>
    <p><strong>Order Date:</strong> {{.OrderDate}}</p>
    <p><strong>Total Amount:</strong> ${{money .Order.Total}}</p>

    <h3>Customer Information</h3>
    <p>
      <strong>Name:</strong> {{.Order.CustomerName}}<br>
      <strong>Email:</strong> {{.Order.CustomerEmail}}<br>
      <strong>Phone:</strong> {{.Order.CustomerPhone}}
    </p>

    <h3>Shipping Address</h3>
    <p>
      {{.Order.CustomerAddress}}<br>
      {{.Order.CustomerCity}}, {{.Order.CustomerState}} {{.Order.CustomerZip}}
    </p>

    <h3>Items Ordered</h3>
    <ul>
      {{range .Order.Items}}
      <li>{{.ProductName}} ({{.Size}}, {{.Color}}) x{{.Quantity}} - ${{lineTotal .}}</li>
      {{end}}
    </ul>

    <h3>Order Summary</h3>
    <p>
      Subtotal: ${{money .Order.Subtotal}}<br>
      Shipping: ${{money .Order.Shipping}}<br>
      <strong>Total: ${{money .Order.Total}}</strong>
    </p>

    <p style="margin-top: 30px; padding: 15px; background: #fff3cd; border-left: 4px solid #ffc107;">
      <strong>Action Required:</strong> Process this order and prepare for shipment.
    </p>
  </div>
</body>
</html>
`))
