// Package pdf renders the romaneio, the manifest handed to the driver with a
// batch of invoices.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

type RomaneioRenderer struct {
	company string
	loc     *time.Location
}

var _ interfaces.IRomaneioRenderer = (*RomaneioRenderer)(nil)

// NewRomaneioRenderer prints timestamps in loc (UTC when nil).
func NewRomaneioRenderer(company string, loc *time.Location) *RomaneioRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &RomaneioRenderer{company: company, loc: loc}
}

type column struct {
	title string
	width float64
	align string
	value func(entities.Expedicao) string
}

var columns = []column{
	{"NF", 22, "L", func(e entities.Expedicao) string { return e.Nota }},
	{"Cliente", 58, "L", func(e entities.Expedicao) string { return e.Cliente }},
	{"Data NF", 22, "C", func(e entities.Expedicao) string { return formatDate(e.DataNota) }},
	{"Vol.", 14, "R", func(e entities.Expedicao) string { return e.Volumes }},
	{"Status", 30, "C", func(e entities.Expedicao) string { return string(e.Status) }},
	{"Placa", 20, "C", func(e entities.Expedicao) string { return e.Placa }},
}

// Render writes an A4 manifest: one line per invoice, the volume total and
// the signature block.
func (r *RomaneioRenderer) Render(w io.Writer, items []entities.Expedicao, generatedAt time.Time) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(generatedAt)
	doc.SetTitle("Romaneio de expedição", true)
	doc.SetMargins(12, 12, 12)
	doc.SetAutoPageBreak(true, 15)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	pageW, _ := doc.GetPageSize()
	contentW := pageW - 24

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(contentW, 8, tr(r.company), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(contentW, 6, tr("Romaneio de expedição"), "", 1, "C", false, 0, "")
	doc.CellFormat(contentW, 6, generatedAt.In(r.loc).Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	if driver := firstDriver(items); driver.Nome != "" {
		doc.SetFont("Helvetica", "", 9)
		line := fmt.Sprintf("Motorista: %s   CPF: %s   Placa: %s", driver.Nome, formatCPF(driver.Cpf), driver.Placa)
		doc.CellFormat(contentW, 5, tr(line), "", 1, "L", false, 0, "")
		doc.Ln(2)
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for _, c := range columns {
		doc.CellFormat(c.width, 6, tr(c.title), "1", 0, c.align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	for _, e := range items {
		for _, c := range columns {
			doc.CellFormat(c.width, 6, tr(truncate(c.value(e), c.width)), "1", 0, c.align, false, 0, "")
		}
		doc.Ln(-1)
		if v, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(e.Volumes), ",", ".")); err == nil {
			total = total.Add(v)
		}
	}

	doc.Ln(2)
	doc.SetFont("Helvetica", "B", 10)
	summary := fmt.Sprintf("Notas: %d    Volumes: %s", len(items), total.String())
	doc.CellFormat(contentW, 6, tr(summary), "", 1, "R", false, 0, "")

	doc.Ln(18)
	half := contentW / 2
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(half-6, 5, tr("Conferente"), "T", 0, "C", false, 0, "")
	doc.CellFormat(12, 5, "", "", 0, "C", false, 0, "")
	doc.CellFormat(half-6, 5, tr("Motorista"), "T", 1, "C", false, 0, "")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: write romaneio: %w", err)
	}
	return nil
}

func firstDriver(items []entities.Expedicao) entities.Driver {
	for _, e := range items {
		if e.Motorista != "" {
			return entities.Driver{Nome: e.Motorista, Cpf: e.Cpf, Placa: e.Placa}
		}
	}
	return entities.Driver{}
}

// formatDate renders yyyy-mm-dd as dd/mm/yyyy, leaving anything else as is.
func formatDate(iso string) string {
	t, err := time.Parse(entities.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

// truncate keeps roughly what fits a column at 9pt.
func truncate(s string, width float64) string {
	max := int(width / 1.9)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "."
}
