package http

import (
	"html/template"
	"net/http"
)

var adminOrdersTmpl = template.Must(template.New("adminOrders").Parse(`<!DOCTYPE html>
<html>
<head><title>Orders</title></head>
<body>
<h1>Orders ({{len .}})</h1>
<table border="1" cellpadding="4">
<tr><th>ID</th><th>Status</th><th>Payment</th><th>Total</th><th>Items</th><th>Created</th><th>Note</th></tr>
{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.Status}}</td>
<td>{{.PaymentMethod}}</td>
<td>{{printf "%.2f" .Total}}</td>
<td>{{len .Items}}</td>
<td>{{.CreatedAt}}</td>
<td>{{.Note}}</td>
</tr>{{end}}
</table>
</body>
</html>
`))

var adminReviewsTmpl = template.Must(template.New("adminReviews").Parse(`<!DOCTYPE html>
<html>
<head><title>Reviews</title></head>
<body>
<h1>Reviews ({{len .}})</h1>
<table border="1" cellpadding="4">
<tr><th>ID</th><th>Name</th><th>Rating</th><th>Comment</th><th>Created</th></tr>
{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.Name}}</td>
<td>{{.Rating}}</td>
<td>{{.Comment}}</td>
<td>{{.CreatedAt}}</td>
</tr>{{end}}
</table>
</body>
</html>
`))

func (c *Controller) AdminOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.ListOrders()
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := adminOrdersTmpl.Execute(w, orders); err != nil {
		c.lg.Errorf("rendering admin orders failed: %v", err)
	}
}

func (c *Controller) AdminReviews(w http.ResponseWriter, r *http.Request) {
	reviews, apiErr := c.service.ListReviews()
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := adminReviewsTmpl.Execute(w, reviews); err != nil {
		c.lg.Errorf("rendering admin reviews failed: %v", err)
	}
}
