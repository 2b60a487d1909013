package handler

import (
	"html/template"

	"github.com/edocta/consulta-vehicular/dto"
)

const (
	reportTemplateName = "report.html"
	errorTemplateName  = "error.html"
)

// reportView is the data handed to the HTML report template.
type reportView struct {
	*dto.ConsultaResponse
	Findings []findingView
}

type findingView struct {
	Label string
	Class string
	dto.MonetaryFinding
}

func newReportView(resp *dto.ConsultaResponse) reportView {
	sd := resp.SubsidiesAndDonations
	return reportView{
		ConsultaResponse: resp,
		Findings: []findingView{
			{"SUBSIDIO REFRENDO PRONTO PAGO:", "subsidio", sd.PromptPaymentSubsidy},
			{"DONATIVO CRUZ ROJA:", "donativo", sd.RedCrossDonation},
			{"DONATIVO BOMBEROS:", "donativo", sd.FirefightersDonation},
		},
	}
}

var reportTemplates = template.Must(template.New(reportTemplateName).Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Consulta Vehicular - {{.Plate}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
    .container { max-width: 1000px; margin: 0 auto; background: white; padding: 25px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px; margin-bottom: 25px; }
    .section { margin: 25px 0; border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden; }
    .section-title { background: #f8f9fa; padding: 15px; font-weight: bold; color: #333; border-bottom: 1px solid #e0e0e0; }
    .section-content { padding: 20px; }
    .item { margin: 10px 0; padding: 8px 0; border-bottom: 1px solid #f0f0f0; }
    .item:last-child { border-bottom: none; }
    .not-found { color: #dc3545; }
    .highlight { background: #fff3cd; padding: 15px; border-radius: 5px; border-left: 4px solid #ffc107; margin: 15px 0; }
    .money { font-weight: bold; color: #28a745; font-family: 'Courier New', monospace; }
    .subsidio { color: #17a2b8; }
    .donativo { color: #6f42c1; }
    .badge { display: inline-block; padding: 3px 8px; border-radius: 12px; font-size: 12px; font-weight: bold; margin-left: 10px; }
    .badge-found { background: #d4edda; color: #155724; }
    .badge-notfound { background: #f8d7da; color: #721c24; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0; text-align: center; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🚗 Consulta Vehicular</h1>
      <p>Placa: <strong id="placa">{{.Plate}}</strong></p>
      <p>Consultado el: {{.QueriedAt}}</p>
    </div>

    <div class="section" id="vehiculo">
      <div class="section-title">📋 Información del Vehículo</div>
      <div class="section-content">
        {{range .Vehicle}}<div class="item">{{.}}</div>{{end}}
      </div>
    </div>

    <div class="section" id="cargos">
      <div class="section-title">💰 Cargos</div>
      <div class="section-content">
        {{range $i, $c := .Charges}}<div class="item">{{inc $i}}. {{$c}}</div>{{end}}
      </div>
    </div>

    <div class="section" id="subsidios">
      <div class="section-title">🎯 Subsidios y Donativos</div>
      <div class="section-content">
        {{range .Findings}}
        <div class="item">
          <strong class="{{.Class}}">{{.Label}}</strong>
          {{if .Found}}<span class="money">{{.Amount}}</span>{{else}}<span class="not-found">No encontrado</span>{{end}}
          <span class="badge {{if .Found}}badge-found{{else}}badge-notfound{{end}}">{{if .Found}}ENCONTRADO{{else}}NO ENCONTRADO{{end}}</span>
        </div>
        {{end}}
      </div>
    </div>

    <div class="highlight" id="resumen">
      <h3>📊 Resumen Financiero</h3>
      <div class="item"><strong>SUBTOTAL:</strong> <span class="money">{{.Subtotal}}</span></div>
      <div class="item"><strong>TOTAL A PAGAR:</strong> <span class="money">{{.TotalDue}}</span></div>
    </div>

    <div class="footer">
      <p>Consulta realizada con API Automatizada v{{.Metadata.Version}}</p>
      <p>Proxy: {{.Metadata.ProxyUsed}}</p>
      <p>Tiempo de consulta: {{.Elapsed}}</p>
    </div>
  </div>
</body>
</html>
{{define "` + errorTemplateName + `"}}<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Consulta Vehicular</title></head>
<body><h1>{{.Title}}</h1><p>{{.Message}}</p></body>
</html>
{{end}}`))
