package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"fleet-service/internal/model"
)

// MissionOrder renders a one-page mission order for a populated trip. It is
// a pure projection of the trip; no business logic lives here.
func MissionOrder(trip *model.Trip) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "MISSION ORDER", "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 12)
	if trip.Driver != nil {
		line(doc, fmt.Sprintf("Driver: %s", trip.Driver.FullName()))
	}
	if trip.Truck != nil {
		line(doc, fmt.Sprintf("Truck: %s", trip.Truck.PlateNumber))
	}
	if trip.Trailer != nil {
		line(doc, fmt.Sprintf("Trailer: %s", trip.Trailer.PlateNumber))
	}
	doc.Ln(4)

	line(doc, fmt.Sprintf("Departure: %s", trip.Departure))
	line(doc, fmt.Sprintf("Destination: %s", trip.Destination))
	line(doc, fmt.Sprintf("Date: %s", trip.DepartureDate.Format("2006-01-02")))
	doc.Ln(4)

	line(doc, fmt.Sprintf("Status: %s", trip.Status))
	if trip.StartMileage != nil {
		line(doc, fmt.Sprintf("Start mileage: %.0f km", *trip.StartMileage))
	}
	if trip.EndMileage != nil {
		line(doc, fmt.Sprintf("End mileage: %.0f km", *trip.EndMileage))
	}
	if trip.FuelUsed > 0 {
		line(doc, fmt.Sprintf("Fuel used: %.1f L", trip.FuelUsed))
	}

	if trip.Notes != "" {
		doc.Ln(4)
		line(doc, fmt.Sprintf("Notes: %s", trip.Notes))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render mission order: %w", err)
	}
	return buf.Bytes(), nil
}

func line(doc *fpdf.Fpdf, text string) {
	doc.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}
