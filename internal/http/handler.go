package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/pdf"
	"fleet-service/internal/service"
)

type Handler struct {
	authService        *service.AuthService
	truckService       *service.TruckService
	trailerService     *service.TrailerService
	tireService        *service.TireService
	tripService        *service.TripService
	maintenanceService *service.MaintenanceService
	reportService      *service.ReportService
	log                zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	truckService *service.TruckService,
	trailerService *service.TrailerService,
	tireService *service.TireService,
	tripService *service.TripService,
	maintenanceService *service.MaintenanceService,
	reportService *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:        authService,
		truckService:       truckService,
		trailerService:     trailerService,
		tireService:        tireService,
		tripService:        tripService,
		maintenanceService: maintenanceService,
		reportService:      reportService,
		log:                log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")

	api.POST("/register", h.register)
	api.POST("/login", h.login)

	protected := api.Group("")
	protected.Use(authMiddleware)

	admin := protected.Group("", middleware.RequireRoles(model.RoleAdmin))
	{
		admin.GET("/trucks", h.listTrucks)
		admin.GET("/trucks/:id", h.getTruck)
		admin.POST("/trucks", h.createTruck)
		admin.PUT("/trucks/:id", h.updateTruck)
		admin.DELETE("/trucks/:id", h.deleteTruck)

		admin.GET("/trailers", h.listTrailers)
		admin.GET("/trailers/:id", h.getTrailer)
		admin.POST("/trailers", h.createTrailer)
		admin.PUT("/trailers/:id", h.updateTrailer)
		admin.DELETE("/trailers/:id", h.deleteTrailer)

		admin.GET("/tires", h.listTires)
		admin.GET("/tires/truck/:truckId", h.listTiresByTruck)
		admin.POST("/tires", h.createTire)
		admin.PUT("/tires/:id", h.updateTire)
		admin.DELETE("/tires/:id", h.deleteTire)

		admin.GET("/trips", h.listTrips)
		admin.POST("/trips", h.createTrip)
		admin.PUT("/trips/:id", h.updateTrip)
		admin.DELETE("/trips/:id", h.deleteTrip)

		admin.GET("/maintenances", h.listMaintenances)
		admin.GET("/maintenances/upcoming", h.listUpcomingMaintenances)
		admin.GET("/maintenances/truck/:truckId", h.listMaintenancesByTruck)
		admin.POST("/maintenances", h.createMaintenance)
		admin.PUT("/maintenances/:id", h.updateMaintenance)
		admin.DELETE("/maintenances/:id", h.deleteMaintenance)

		admin.GET("/reports/fuel", h.fuelReport)
		admin.GET("/reports/mileage", h.mileageReport)
		admin.GET("/reports/maintenance", h.maintenanceReport)
		admin.GET("/reports/drivers", h.driverPerformanceReport)
		admin.GET("/reports/dashboard", h.dashboard)
	}

	// Drivers keep access to their own trips and status updates.
	shared := protected.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleDriver))
	{
		shared.GET("/my-trips", h.listMyTrips)
		shared.GET("/trips/:id", h.getTrip)
		shared.GET("/trips/:id/pdf", h.tripPDF)
		shared.PATCH("/trips/:id/status", h.updateTripStatus)
	}
}

// Auth handlers

func (h *Handler) register(c *gin.Context) {
	var req struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Truck handlers

func (h *Handler) listTrucks(c *gin.Context) {
	trucks, err := h.truckService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trucks))
}

func (h *Handler) getTruck(c *gin.Context) {
	truck, err := h.truckService.Get(c.Request.Context(), pathID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(truck))
}

func (h *Handler) createTruck(c *gin.Context) {
	var req struct {
		PlateNumber string  `json:"plate_number"`
		Brand       string  `json:"brand"`
		Model       string  `json:"model"`
		Year        int     `json:"year"`
		Mileage     float64 `json:"mileage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	truck, err := h.truckService.Create(c.Request.Context(), service.CreateTruckInput{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(truck))
}

func (h *Handler) updateTruck(c *gin.Context) {
	var req struct {
		PlateNumber *string  `json:"plate_number"`
		Brand       *string  `json:"brand"`
		Model       *string  `json:"model"`
		Year        *int     `json:"year"`
		Mileage     *float64 `json:"mileage"`
		Status      *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	truck, err := h.truckService.Update(c.Request.Context(), pathID(c), service.UpdateTruckInput{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
		Status:      req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(truck))
}

func (h *Handler) deleteTruck(c *gin.Context) {
	if err := h.truckService.Delete(c.Request.Context(), pathID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Trailer handlers

func (h *Handler) listTrailers(c *gin.Context) {
	trailers, err := h.trailerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trailers))
}

func (h *Handler) getTrailer(c *gin.Context) {
	trailer, err := h.trailerService.Get(c.Request.Context(), pathID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trailer))
}

func (h *Handler) createTrailer(c *gin.Context) {
	var req struct {
		PlateNumber string  `json:"plate_number"`
		Type        string  `json:"type"`
		Capacity    float64 `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trailer, err := h.trailerService.Create(c.Request.Context(), service.CreateTrailerInput{
		PlateNumber: req.PlateNumber,
		Type:        req.Type,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(trailer))
}

func (h *Handler) updateTrailer(c *gin.Context) {
	var req struct {
		PlateNumber *string  `json:"plate_number"`
		Type        *string  `json:"type"`
		Capacity    *float64 `json:"capacity"`
		Status      *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trailer, err := h.trailerService.Update(c.Request.Context(), pathID(c), service.UpdateTrailerInput{
		PlateNumber: req.PlateNumber,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Status:      req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trailer))
}

func (h *Handler) deleteTrailer(c *gin.Context) {
	if err := h.trailerService.Delete(c.Request.Context(), pathID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Tire handlers

func (h *Handler) listTires(c *gin.Context) {
	tires, err := h.tireService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tires))
}

func (h *Handler) listTiresByTruck(c *gin.Context) {
	tires, err := h.tireService.ListByTruck(c.Request.Context(), strings.TrimSpace(c.Param("truckId")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tires))
}

func (h *Handler) createTire(c *gin.Context) {
	var req struct {
		TruckID               string  `json:"truck_id"`
		Position              string  `json:"position"`
		Brand                 string  `json:"brand"`
		InstallationDate      string  `json:"installation_date"`
		MileageAtInstallation float64 `json:"mileage_at_installation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	tire, err := h.tireService.Create(c.Request.Context(), service.CreateTireInput{
		TruckID:               req.TruckID,
		Position:              req.Position,
		Brand:                 req.Brand,
		InstallationDate:      req.InstallationDate,
		MileageAtInstallation: req.MileageAtInstallation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(tire))
}

func (h *Handler) updateTire(c *gin.Context) {
	var req struct {
		Position *string `json:"position"`
		Brand    *string `json:"brand"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	tire, err := h.tireService.Update(c.Request.Context(), pathID(c), service.UpdateTireInput{
		Position: req.Position,
		Brand:    req.Brand,
		Status:   req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(tire))
}

func (h *Handler) deleteTire(c *gin.Context) {
	if err := h.tireService.Delete(c.Request.Context(), pathID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Trip handlers

func (h *Handler) listTrips(c *gin.Context) {
	trips, err := h.tripService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trips))
}

func (h *Handler) listMyTrips(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	trips, err := h.tripService.ListMine(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trips))
}

func (h *Handler) getTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), principal, pathID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) createTrip(c *gin.Context) {
	var req struct {
		DriverID      string  `json:"driver_id"`
		TruckID       string  `json:"truck_id"`
		TrailerID     *string `json:"trailer_id"`
		Departure     string  `json:"departure"`
		Destination   string  `json:"destination"`
		DepartureDate string  `json:"departure_date"`
		Notes         string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), service.CreateTripInput{
		DriverID:      req.DriverID,
		TruckID:       req.TruckID,
		TrailerID:     req.TrailerID,
		Departure:     req.Departure,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Notes:         req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(trip))
}

func (h *Handler) updateTrip(c *gin.Context) {
	var req struct {
		Departure     *string `json:"departure"`
		Destination   *string `json:"destination"`
		DepartureDate *string `json:"departure_date"`
		Notes         *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trip, err := h.tripService.Update(c.Request.Context(), pathID(c), service.UpdateTripInput{
		Departure:     req.Departure,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Notes:         req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) updateTripStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Status       string   `json:"status" binding:"required"`
		StartMileage *float64 `json:"start_mileage"`
		EndMileage   *float64 `json:"end_mileage"`
		FuelUsed     *float64 `json:"fuel_used"`
		Notes        *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trip, err := h.tripService.UpdateStatus(c.Request.Context(), principal, pathID(c), service.UpdateTripStatusInput{
		Status:       req.Status,
		StartMileage: req.StartMileage,
		EndMileage:   req.EndMileage,
		FuelUsed:     req.FuelUsed,
		Notes:        req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) deleteTrip(c *gin.Context) {
	if err := h.tripService.Delete(c.Request.Context(), pathID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) tripPDF(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), principal, pathID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	document, err := pdf.MissionOrder(trip)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("mission-order-%s.pdf", trip.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", document)
}

// Maintenance handlers

func (h *Handler) listMaintenances(c *gin.Context) {
	records, err := h.maintenanceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) listUpcomingMaintenances(c *gin.Context) {
	records, err := h.maintenanceService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) listMaintenancesByTruck(c *gin.Context) {
	records, err := h.maintenanceService.ListByTruck(c.Request.Context(), strings.TrimSpace(c.Param("truckId")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(records))
}

func (h *Handler) createMaintenance(c *gin.Context) {
	var req struct {
		TruckID           string   `json:"truck_id"`
		Type              string   `json:"type"`
		Description       string   `json:"description"`
		Date              string   `json:"date"`
		Cost              float64  `json:"cost"`
		Mileage           float64  `json:"mileage"`
		NextMaintenanceAt *float64 `json:"next_maintenance_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.maintenanceService.Create(c.Request.Context(), service.CreateMaintenanceInput{
		TruckID:           req.TruckID,
		Type:              req.Type,
		Description:       req.Description,
		Date:              req.Date,
		Cost:              req.Cost,
		Mileage:           req.Mileage,
		NextMaintenanceAt: req.NextMaintenanceAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateMaintenance(c *gin.Context) {
	var req struct {
		Type              *string  `json:"type"`
		Description       *string  `json:"description"`
		Date              *string  `json:"date"`
		Cost              *float64 `json:"cost"`
		Mileage           *float64 `json:"mileage"`
		NextMaintenanceAt *float64 `json:"next_maintenance_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.maintenanceService.Update(c.Request.Context(), pathID(c), service.UpdateMaintenanceInput{
		Type:              req.Type,
		Description:       req.Description,
		Date:              req.Date,
		Cost:              req.Cost,
		Mileage:           req.Mileage,
		NextMaintenanceAt: req.NextMaintenanceAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteMaintenance(c *gin.Context) {
	if err := h.maintenanceService.Delete(c.Request.Context(), pathID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Report handlers

func (h *Handler) fuelReport(c *gin.Context) {
	report, err := h.reportService.FuelConsumption(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) mileageReport(c *gin.Context) {
	report, err := h.reportService.Mileage(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) maintenanceReport(c *gin.Context) {
	report, err := h.reportService.Maintenance(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) driverPerformanceReport(c *gin.Context) {
	report, err := h.reportService.DriverPerformance(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(report))
}

func (h *Handler) dashboard(c *gin.Context) {
	summary, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var fieldErrs service.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrDuplicate):
		c.JSON(http.StatusBadRequest, errorResponse("plate number or email already exists"))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func pathID(c *gin.Context) string {
	return strings.TrimSpace(c.Param("id"))
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
