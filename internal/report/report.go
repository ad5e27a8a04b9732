package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/efuentes/discover/internal/device"
	"github.com/efuentes/discover/internal/logger"
	"github.com/efuentes/discover/internal/util"
)

// Formats lists the supported report format tags
var Formats = []string{"html", "csv", "json"}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Network Discovery Report</title>
</head>
<body>
<h1>Network Discovery Report</h1>
<table border="1">
<tr>
<th>ID</th><th>Host</th><th>IP</th><th>Alive</th>
<th>SSH</th><th>SNMP</th><th>MySQL</th><th>Uname</th><th>Errors</th>
</tr>
{{range .}}
<tr>
<td>{{.ID}}</td>
<td>{{.Host}}</td>
<td>{{.IP}}</td>
<td>{{.Alive}}</td>
<td>{{.SSH}}</td>
<td>{{.SNMP}}</td>
<td>{{.MySQL}}</td>
<td>{{.Uname}}</td>
<td>{{range .Errors}}{{.}}<br>{{end}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`

// Generator renders device lists as report files in an output directory
type Generator struct {
	outputDir string
	log       logger.Logger
}

// NewGenerator returns a new instance of Generator
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
		log:       logger.New(),
	}
}

// Generate writes a report for the given devices in the given format and
// returns the path of the generated file
func (g *Generator) Generate(devices []device.Device, format string) (string, error) {
	if !util.SliceIncludes(Formats, format) {
		return "", fmt.Errorf("unsupported report format: %s", format)
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", err
	}

	var outputPath string
	var err error

	switch format {
	case "html":
		outputPath, err = g.generateHTML(devices)
	case "csv":
		outputPath, err = g.generateCSV(devices)
	case "json":
		outputPath, err = g.generateJSON(devices)
	}

	if err != nil {
		return "", err
	}

	g.log.Info().Str("path", outputPath).Msg("report generated")

	return outputPath, nil
}

func (g *Generator) generateHTML(devices []device.Device) (string, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)

	if err != nil {
		return "", err
	}

	outputPath := path.Join(g.outputDir, "devices.html")

	file, err := os.Create(outputPath)

	if err != nil {
		return "", err
	}

	defer file.Close()

	if err := tmpl.Execute(file, devices); err != nil {
		return "", err
	}

	return outputPath, nil
}

func (g *Generator) generateCSV(devices []device.Device) (string, error) {
	outputPath := path.Join(g.outputDir, "devices.csv")

	file, err := os.Create(outputPath)

	if err != nil {
		return "", err
	}

	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{
		"id", "host", "ip", "alive", "ssh", "snmp", "mysql", "uname", "errors",
	}

	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, d := range devices {
		row := []string{
			strconv.Itoa(d.ID),
			d.Host,
			d.IP,
			strconv.FormatBool(d.Alive),
			strconv.FormatBool(d.SSH),
			strconv.FormatBool(d.SNMP),
			strconv.FormatBool(d.MySQL),
			d.Uname,
			strings.Join(d.Errors, "; "),
		}

		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return "", err
	}

	return outputPath, nil
}

func (g *Generator) generateJSON(devices []device.Device) (string, error) {
	outputPath := path.Join(g.outputDir, "devices.json")

	maps := make([]map[string]any, 0, len(devices))

	for _, d := range devices {
		maps = append(maps, d.ToMap())
	}

	raw, err := json.MarshalIndent(maps, "", "  ")

	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, raw, 0644); err != nil {
		return "", err
	}

	return outputPath, nil
}
