package admin_page

import "html/template"

var pageTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.LoungeName}} - Bookings</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: #0f0f1a; color: #eee; margin: 0; padding: 24px; }
h1 { color: #a78bfa; }
.summary { margin-bottom: 16px; color: #bbb; }
.booking-card { background: #1a1a2e; border: 1px solid #2e2e4d; border-radius: 8px; padding: 16px; margin-bottom: 12px; }
.booking-header { display: flex; justify-content: space-between; font-weight: bold; margin-bottom: 8px; }
.status { text-transform: capitalize; padding: 2px 8px; border-radius: 4px; background: #2e2e4d; }
.status-confirmed { background: #14532d; }
.status-cancelled { background: #7f1d1d; }
.status-completed { background: #1e3a8a; }
.details span { display: inline-block; margin-right: 16px; color: #ccc; }
.empty { color: #888; }
</style>
</head>
<body>
<h1>{{.LoungeName}} - Bookings</h1>
<div class="summary">Total Bookings: {{.Total}}</div>
{{- if .Bookings}}
{{- range .Bookings}}
<div class="booking-card">
  <div class="booking-header">
    <span>{{.Name}} ({{.ReferenceNumber}})</span>
    <span class="status status-{{.Status}}">{{.Status}}</span>
  </div>
  <div class="details">
    <span>Game: {{.GameType}}</span>
    <span>Date: {{.Date}}</span>
    <span>Time: {{.TimeSlot}}</span>
    <span>Duration: {{.DurationMinutes}} min</span>
    <span>People: {{.NumPeople}}</span>
    <span>Price: ₹{{printf "%.2f" .Price}}</span>
    <span>Phone: {{.Phone}}</span>
    {{- with .Email}}<span>Email: {{.}}</span>{{end}}
  </div>
  {{- with .SpecialRequests}}<div class="details"><span>Requests: {{.}}</span></div>{{end}}
</div>
{{- end}}
{{- else}}
<p class="empty">No bookings found</p>
{{- end}}
<script>
setTimeout(function () { window.location.reload(); }, 30000);
</script>
</body>
</html>
`))
