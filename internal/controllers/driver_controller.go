package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleetops_driver_service/internal/apperrors"
	"fleetops_driver_service/internal/dto"
	"fleetops_driver_service/internal/validation"
)

const (
	msgDriverAdded   = "Driver added successfully"
	msgAddFailed     = "Failed to add driver. License number may already exist."
	msgUpdateFailed  = "Failed to update driver. Driver not found or license number already exists."
	msgDriverDeleted = "Driver deleted successfully"
	msgNotFound      = "Driver not found"
	msgInvalidID     = "Invalid driver ID"
)

// DriverService is what the HTTP layer needs from the driver service.
type DriverService interface {
	Create(ctx context.Context, in dto.Driver) (dto.Driver, error)
	Get(ctx context.Context, id uint) (dto.Driver, error)
	List(ctx context.Context) ([]dto.Driver, error)
	Update(ctx context.Context, id uint, in dto.Driver) (dto.Driver, error)
	Delete(ctx context.Context, id uint) error
}

// DriverController serves /api/drivers. Failures are logged in full and
// answered with fixed messages.
type DriverController struct {
	svc DriverService
	log logrus.FieldLogger
}

func NewDriverController(svc DriverService, log logrus.FieldLogger) *DriverController {
	return &DriverController{svc: svc, log: log}
}

// CreateDriver handles POST /api/drivers.
func (dc *DriverController) CreateDriver(c *gin.Context) {
	var input dto.Driver
	if err := c.ShouldBindJSON(&input); err != nil {
		dc.requestLog(c).WithField("details", validation.ToDetails(err)).Warn("CreateDriver: invalid payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAddFailed})
		return
	}

	created, err := dc.svc.Create(c.Request.Context(), input)
	if err != nil {
		dc.logFailure(c, err, "CreateDriver: driver not added")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAddFailed})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgDriverAdded, "driver": created})
}

// GetDriver handles GET /api/drivers/:id.
func (dc *DriverController) GetDriver(c *gin.Context) {
	id, ok := dc.parseID(c)
	if !ok {
		return
	}

	driver, err := dc.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		dc.requestLog(c).WithError(err).Error("GetDriver: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver"})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// ListDrivers handles GET /api/drivers/list.
func (dc *DriverController) ListDrivers(c *gin.Context) {
	drivers, err := dc.svc.List(c.Request.Context())
	if err != nil {
		dc.requestLog(c).WithError(err).Error("ListDrivers: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drivers"})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// UpdateDriver handles PUT /api/drivers/:id. The path id wins over any
// driverId in the body.
func (dc *DriverController) UpdateDriver(c *gin.Context) {
	id, ok := dc.parseID(c)
	if !ok {
		return
	}

	var input dto.Driver
	if err := c.ShouldBindJSON(&input); err != nil {
		dc.requestLog(c).WithField("details", validation.ToDetails(err)).Warn("UpdateDriver: invalid payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUpdateFailed})
		return
	}
	input.DriverID = id

	updated, err := dc.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		dc.logFailure(c, err, "UpdateDriver: driver not updated")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUpdateFailed})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteDriver handles DELETE /api/drivers/:id.
func (dc *DriverController) DeleteDriver(c *gin.Context) {
	id, ok := dc.parseID(c)
	if !ok {
		return
	}

	if err := dc.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
			return
		}
		dc.requestLog(c).WithError(err).Error("DeleteDriver: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgDriverDeleted})
}

func (dc *DriverController) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidID})
		return 0, false
	}
	return uint(id), true
}

// logFailure logs expected rejections at warn and everything else at error.
func (dc *DriverController) logFailure(c *gin.Context, err error, msg string) {
	entry := dc.requestLog(c).WithError(err)
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConstraintViolation) {
		entry.Warn(msg)
		return
	}
	entry.Error(msg)
}

func (dc *DriverController) requestLog(c *gin.Context) logrus.FieldLogger {
	return dc.log.WithField("request_id", c.GetString("request_id"))
}
