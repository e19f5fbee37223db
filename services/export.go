package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"necesitovisa/models"
)

const exportSheetName = "Requisitos"

// GenerateRequirementsExcel builds an XLSX workbook with one row per
// curated origin-destination pair, Henley overlay already applied. Used by
// the admin dashboard to hand editors a reviewable snapshot.
func GenerateRequirementsExcel(store *DatasetStore) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Origen", "Destino", "Requiere visa", "Estadía máxima (días)",
		"Permiso alternativo", "Pasaporte", "Boleto de salida",
		"Prueba de fondos", "Última revisión", "Fuentes",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	f.SetCellStyle(exportSheetName, "A1", "J1", headerStyle)
	f.SetColWidth(exportSheetName, "A", "B", 22)
	f.SetColWidth(exportSheetName, "C", "I", 18)
	f.SetColWidth(exportSheetName, "J", "J", 60)

	henley := store.Henley()
	row := 2
	for _, origin := range models.OriginCountries {
		for _, dest := range models.DestinationCountries {
			requirement, ok := FindRequirement(origin.Slug, dest.Slug)
			if !ok {
				continue
			}
			requirement = ApplyHenleyOverride(requirement, HenleyEntryFor(henley, origin.ISO2, dest.ISO2))

			visaText := "No"
			if requirement.VisaRequired {
				visaText = "Sí"
			}
			sources := ""
			for i, source := range requirement.Sources {
				if i > 0 {
					sources += "; "
				}
				sources += source.URL
			}

			values := []interface{}{
				origin.Name, dest.Name, visaText, requirement.MaxStayDays,
				requirement.AltPermit, requirement.PassportRule,
				requirement.OnwardTicket, requirement.FundsProof,
				requirement.LastReviewed, sources,
			}
			for i, value := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(exportSheetName, cell, value)
			}
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}
	return &buf, nil
}
