package notify

import "html/template"

var orderStatusTmpl = template.Must(template.New("order_status").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Order {{.Reference}}</title></head>
<body style="font-family: Arial, sans-serif;">
  <h2>Order {{.Reference}}</h2>
  <p>Your order is now: <strong>{{.Status}}</strong></p>
  <table style="border-collapse: collapse;">
    <thead>
      <tr><th align="left">Item</th><th>Qty</th><th align="right">Unit price</th></tr>
    </thead>
    <tbody>
    {{- range .Items}}
      <tr><td>{{.Kind}}{{if .Option}} ({{.Option}}){{end}}</td><td align="center">{{.Quantity}}</td><td align="right">{{.UnitPrice.StringFixed 2}}</td></tr>
    {{- end}}
    </tbody>
    <tfoot>
      <tr><td colspan="2" align="right"><strong>Total</strong></td><td align="right"><strong>{{.Total.StringFixed 2}}</strong></td></tr>
    </tfoot>
  </table>
  <h3>Shipping to</h3>
  <p>
    {{.Shipping.RecipientName}}<br>
    {{.Shipping.Line1}}<br>
    {{- if .Shipping.Line2}}{{.Shipping.Line2}}<br>{{end}}
    {{.Shipping.City}} {{.Shipping.PostalCode}}
  </p>
</body>
</html>
`))
