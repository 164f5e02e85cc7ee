package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

// ReportService produces read-only summaries from one pass over persisted
// records. Nothing here mutates state.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

type FuelReportRow struct {
	Truck     string  `json:"truck"`
	TotalFuel float64 `json:"total_fuel"`
	TripCount int     `json:"trip_count"`
}

type MileageReportRow struct {
	Truck          string  `json:"truck"`
	TotalDistance  float64 `json:"total_distance"`
	CurrentMileage float64 `json:"current_mileage"`
	TripCount      int     `json:"trip_count"`
}

type MaintenanceTypeTotals struct {
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

type MaintenanceTruckRow struct {
	Truck     string  `json:"truck"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

type MaintenanceReport struct {
	TotalCost float64                                         `json:"total_cost"`
	ByType    map[model.MaintenanceType]MaintenanceTypeTotals `json:"by_type"`
	ByTruck   []MaintenanceTruckRow                           `json:"by_truck"`
}

type DriverPerformanceRow struct {
	Driver                 string  `json:"driver"`
	Email                  string  `json:"email"`
	TotalTrips             int     `json:"total_trips"`
	TotalDistance          float64 `json:"total_distance"`
	TotalFuel              float64 `json:"total_fuel"`
	AverageFuelConsumption float64 `json:"average_fuel_consumption"`
}

type DashboardSummary struct {
	Trucks struct {
		Total         int64 `json:"total"`
		Available     int64 `json:"available"`
		InUse         int64 `json:"in_use"`
		InMaintenance int64 `json:"in_maintenance"`
	} `json:"trucks"`
	Trips struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
		Active    int64 `json:"active"`
		Pending   int64 `json:"pending"`
	} `json:"trips"`
	Maintenance struct {
		Total     int64   `json:"total"`
		TotalCost float64 `json:"total_cost"`
	} `json:"maintenance"`
	Fuel struct {
		TotalConsumed float64 `json:"total_consumed"`
	} `json:"fuel"`
	Drivers struct {
		Total int64 `json:"total"`
	} `json:"drivers"`
}

func (s *ReportService) FuelConsumption(ctx context.Context, startDate, endDate string) ([]FuelReportRow, error) {
	from, to, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	trips, err := s.store.CompletedTrips(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildFuelReport(trips), nil
}

func (s *ReportService) Mileage(ctx context.Context, startDate, endDate string) ([]MileageReportRow, error) {
	from, to, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	trips, err := s.store.CompletedTrips(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildMileageReport(trips), nil
}

func (s *ReportService) Maintenance(ctx context.Context, startDate, endDate string) (*MaintenanceReport, error) {
	from, to, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	records, err := s.store.MaintenancesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	report := BuildMaintenanceReport(records)
	return &report, nil
}

func (s *ReportService) DriverPerformance(ctx context.Context) ([]DriverPerformanceRow, error) {
	trips, err := s.store.CompletedTrips(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return BuildDriverPerformance(trips), nil
}

func (s *ReportService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary

	truckCounts, err := s.store.CountTrucksByStatus(ctx)
	if err != nil {
		return nil, err
	}
	summary.Trucks.Available = truckCounts[model.VehicleStatusAvailable]
	summary.Trucks.InUse = truckCounts[model.VehicleStatusInUse]
	summary.Trucks.InMaintenance = truckCounts[model.VehicleStatusMaintenance]
	for _, count := range truckCounts {
		summary.Trucks.Total += count
	}

	tripCounts, err := s.store.CountTripsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	summary.Trips.Completed = tripCounts[model.TripStatusCompleted]
	summary.Trips.Active = tripCounts[model.TripStatusInProgress]
	summary.Trips.Pending = tripCounts[model.TripStatusTodo]
	for _, count := range tripCounts {
		summary.Trips.Total += count
	}

	maintenanceCount, maintenanceCost, err := s.store.MaintenanceTotals(ctx)
	if err != nil {
		return nil, err
	}
	summary.Maintenance.Total = maintenanceCount
	summary.Maintenance.TotalCost = maintenanceCost

	totalFuel, err := s.store.TotalCompletedTripFuel(ctx)
	if err != nil {
		return nil, err
	}
	summary.Fuel.TotalConsumed = totalFuel

	drivers, err := s.store.CountUsersByRole(ctx, model.RoleDriver)
	if err != nil {
		return nil, err
	}
	summary.Drivers.Total = drivers

	return &summary, nil
}

// BuildFuelReport sums fuel per truck over completed trips. Absent fuel
// readings count as zero.
func BuildFuelReport(trips []model.Trip) []FuelReportRow {
	rows := make(map[uuid.UUID]*FuelReportRow)
	for i := range trips {
		trip := &trips[i]
		row, ok := rows[trip.TruckID]
		if !ok {
			row = &FuelReportRow{Truck: truckLabel(trip)}
			rows[trip.TruckID] = row
		}
		row.TotalFuel += trip.FuelUsed
		row.TripCount++
	}
	out := make([]FuelReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Truck < out[j].Truck })
	return out
}

// BuildMileageReport sums per-truck trip distance. Trips missing either
// odometer reading contribute zero distance, not an error.
func BuildMileageReport(trips []model.Trip) []MileageReportRow {
	rows := make(map[uuid.UUID]*MileageReportRow)
	for i := range trips {
		trip := &trips[i]
		row, ok := rows[trip.TruckID]
		if !ok {
			row = &MileageReportRow{Truck: truckLabel(trip)}
			if trip.Truck != nil {
				row.CurrentMileage = trip.Truck.Mileage
			}
			rows[trip.TruckID] = row
		}
		row.TotalDistance += trip.Distance()
		row.TripCount++
	}
	out := make([]MileageReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Truck < out[j].Truck })
	return out
}

func BuildMaintenanceReport(records []model.Maintenance) MaintenanceReport {
	report := MaintenanceReport{
		ByType:  make(map[model.MaintenanceType]MaintenanceTypeTotals),
		ByTruck: []MaintenanceTruckRow{},
	}
	truckRows := make(map[uuid.UUID]*MaintenanceTruckRow)
	for i := range records {
		record := &records[i]
		report.TotalCost += record.Cost

		typeTotals := report.ByType[record.Type]
		typeTotals.Count++
		typeTotals.TotalCost += record.Cost
		report.ByType[record.Type] = typeTotals

		row, ok := truckRows[record.TruckID]
		if !ok {
			label := record.TruckID.String()
			if record.Truck != nil {
				label = record.Truck.PlateNumber
			}
			row = &MaintenanceTruckRow{Truck: label}
			truckRows[record.TruckID] = row
		}
		row.Count++
		row.TotalCost += record.Cost
	}
	for _, row := range truckRows {
		report.ByTruck = append(report.ByTruck, *row)
	}
	sort.Slice(report.ByTruck, func(i, j int) bool { return report.ByTruck[i].Truck < report.ByTruck[j].Truck })
	return report
}

// BuildDriverPerformance aggregates completed trips per driver. The average
// is litres per 100 km, rounded to two decimals, and stays zero when total
// distance is zero.
func BuildDriverPerformance(trips []model.Trip) []DriverPerformanceRow {
	rows := make(map[uuid.UUID]*DriverPerformanceRow)
	for i := range trips {
		trip := &trips[i]
		row, ok := rows[trip.DriverID]
		if !ok {
			row = &DriverPerformanceRow{Driver: trip.DriverID.String()}
			if trip.Driver != nil {
				row.Driver = trip.Driver.FullName()
				row.Email = trip.Driver.Email
			}
			rows[trip.DriverID] = row
		}
		row.TotalTrips++
		row.TotalDistance += trip.Distance()
		row.TotalFuel += trip.FuelUsed
	}
	out := make([]DriverPerformanceRow, 0, len(rows))
	for _, row := range rows {
		if row.TotalDistance > 0 {
			row.AverageFuelConsumption = round2(row.TotalFuel / row.TotalDistance * 100)
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Driver < out[j].Driver })
	return out
}

func truckLabel(trip *model.Trip) string {
	if trip.Truck != nil {
		return trip.Truck.PlateNumber
	}
	return trip.TruckID.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseDateRange parses an optional inclusive report window. The filter
// applies only when both bounds are present, matching the query contract.
func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	if startDate == "" || endDate == "" {
		return nil, nil, nil
	}
	from, err := parseDate(startDate)
	if err != nil {
		return nil, nil, ErrInvalidInput
	}
	to, err := parseDate(endDate)
	if err != nil {
		return nil, nil, ErrInvalidInput
	}
	if to.Before(from) {
		return nil, nil, ErrInvalidInput
	}
	return &from, &to, nil
}
