// Package report renders the derived dashboard views as an XLSX workbook.
package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/jocross/leadboard/internal/analytics"
	"github.com/jocross/leadboard/internal/model"
)

// Write saves a workbook with one sheet per dashboard view plus the raw
// lead list.
func Write(path string, snap analytics.Snapshot, leads []model.Lead) error {
	f := xlsx.NewFile()

	if err := addSummarySheet(f, snap.Summary); err != nil {
		return err
	}
	if err := addBucketSheet(f, "Status do Plano", snap.PlanStatus); err != nil {
		return err
	}
	if err := addCampaignSheet(f, snap.Campaigns); err != nil {
		return err
	}
	if err := addAgeSheet(f, snap.Ages); err != nil {
		return err
	}
	if err := addTrendSheet(f, snap.Trend); err != nil {
		return err
	}
	if err := addBucketSheet(f, "Por Hora", snap.Hourly); err != nil {
		return err
	}
	if err := addBucketSheet(f, "Por Dia da Semana", snap.Weekday); err != nil {
		return err
	}
	if err := addLeadSheet(f, leads); err != nil {
		return err
	}

	return eris.Wrapf(f.Save(path), "report: save %s", path)
}

func addSummarySheet(f *xlsx.File, s analytics.Summary) error {
	sheet, err := f.AddSheet("Resumo")
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	kv := func(label string, set func(*xlsx.Cell)) {
		row := sheet.AddRow()
		row.AddCell().Value = label
		set(row.AddCell())
	}
	kv("Total de Leads", func(c *xlsx.Cell) { c.SetInt(s.TotalLeads) })
	kv("Com Plano de Saúde", func(c *xlsx.Cell) { c.SetInt(s.Converted) })
	kv("Taxa de Conversão (%)", func(c *xlsx.Cell) { c.Value = s.ConversionRate })
	kv("Campanhas Ativas", func(c *xlsx.Cell) { c.SetInt(s.Campaigns) })
	return nil
}

func addBucketSheet(f *xlsx.File, name string, buckets []analytics.BucketCount) error {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return eris.Wrapf(err, "report: add sheet %s", name)
	}
	header := sheet.AddRow()
	header.AddCell().Value = "Categoria"
	header.AddCell().Value = "Quantidade"
	for _, b := range buckets {
		row := sheet.AddRow()
		row.AddCell().Value = b.Label
		row.AddCell().SetInt(b.Value)
	}
	return nil
}

func addCampaignSheet(f *xlsx.File, ranking []analytics.CampaignPerformance) error {
	sheet, err := f.AddSheet("Campanhas")
	if err != nil {
		return eris.Wrap(err, "report: add campaign sheet")
	}
	header := sheet.AddRow()
	for _, h := range []string{"Campanha", "Total", "Convertidos", "Taxa (%)"} {
		header.AddCell().Value = h
	}
	for _, c := range ranking {
		row := sheet.AddRow()
		row.AddCell().Value = c.Name
		row.AddCell().SetInt(c.Total)
		row.AddCell().SetInt(c.Converted)
		row.AddCell().Value = c.Rate
	}
	return nil
}

func addAgeSheet(f *xlsx.File, ages []analytics.AgePerformance) error {
	sheet, err := f.AddSheet("Faixa Etária")
	if err != nil {
		return eris.Wrap(err, "report: add age sheet")
	}
	header := sheet.AddRow()
	for _, h := range []string{"Faixa", "Total", "Convertidos", "Taxa (%)"} {
		header.AddCell().Value = h
	}
	for _, a := range ages {
		row := sheet.AddRow()
		row.AddCell().Value = a.Name
		row.AddCell().SetInt(a.Total)
		row.AddCell().SetInt(a.Converted)
		row.AddCell().SetFloat(a.Rate)
	}
	return nil
}

func addTrendSheet(f *xlsx.File, trend []analytics.TrendPoint) error {
	sheet, err := f.AddSheet("Tendência")
	if err != nil {
		return eris.Wrap(err, "report: add trend sheet")
	}
	header := sheet.AddRow()
	for _, h := range []string{"Dia", "Leads", "Conversões"} {
		header.AddCell().Value = h
	}
	for _, p := range trend {
		row := sheet.AddRow()
		row.AddCell().Value = p.Date
		row.AddCell().SetInt(p.Leads)
		row.AddCell().SetInt(p.Conversions)
	}
	return nil
}

func addLeadSheet(f *xlsx.File, leads []model.Lead) error {
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "report: add lead sheet")
	}
	header := sheet.AddRow()
	for _, h := range []string{
		"ID", "Nome", "Email", "Origem", "Campanha", "Possui Plano",
		"Tipo do Plano", "Idade", "Especialista", "WhatsApp", "Criado em",
	} {
		header.AddCell().Value = h
	}
	for _, l := range leads {
		row := sheet.AddRow()
		row.AddCell().SetInt64(l.ID)
		row.AddCell().Value = l.Name
		row.AddCell().Value = l.Email
		row.AddCell().Value = l.Source
		row.AddCell().Value = l.Campaign
		row.AddCell().Value = l.HasPlan
		row.AddCell().Value = l.PlanType
		row.AddCell().Value = l.AgeBracket
		row.AddCell().Value = l.Specialist
		row.AddCell().Value = l.WhatsApp
		row.AddCell().Value = l.CreatedAt.Format("2006-01-02 15:04")
	}
	return nil
}
