package reservation

import (
	"bytes"
	"html/template"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; color: #1a1a1a;">
  <h2>Reserva confirmada{{if .ID}} #{{.ID}}{{end}}</h2>
  <p>Olá, {{.CustomerName}}. Sua reserva foi registrada com os dados abaixo.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Origem</strong></td><td>{{.Origin}}</td></tr>
    <tr><td><strong>Destino</strong></td><td>{{.Destination}}</td></tr>
    <tr><td><strong>Data</strong></td><td>{{.Date}}{{if .Time}} às {{.Time}}{{end}}</td></tr>
    {{- if .Vehicle}}
    <tr><td><strong>Veículo</strong></td><td>{{.Vehicle}}</td></tr>
    {{- end}}
    {{- if .Passengers}}
    <tr><td><strong>Passageiros</strong></td><td>{{.Passengers}}</td></tr>
    {{- end}}
    {{- if .Flight}}
    <tr><td><strong>Voo</strong></td><td>{{.Flight}}</td></tr>
    {{- end}}
    {{- if .Price}}
    <tr><td><strong>Valor</strong></td><td>{{.Price}}</td></tr>
    {{- end}}
  </table>
  {{- if .Notes}}
  <p><strong>Observações:</strong> {{.Notes}}</p>
  {{- end}}
  <p>O comprovante em PDF segue anexo.</p>
</body>
</html>
`))

// RenderConfirmation renders the HTML body. Customer-provided fields are escaped.
func RenderConfirmation(d Data) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
