package http

import (
	"errors"
	"net/http"

	"energialab.xyz/energy-monitor-service/pkg/energy"
	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
)

func (rs *RestfulServer) userID(c *gin.Context) (string, bool) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing " + HeaderUserID + " header"})
		return "", false
	}
	return userID, true
}

// respondError maps the core error taxonomy onto HTTP statuses. A user
// with no devices is an empty result, not a failure; an analysis window
// with no readings is not-found.
func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, energy.ErrInvalidDate), errors.Is(err, energy.ErrUnknownMetric):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, energy.ErrEmptyScope):
		c.JSON(http.StatusOK, gin.H{"message": "no devices registered for user"})
	case errors.Is(err, energy.ErrEmptyWindow):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, energy.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type EnvironmentRequest struct {
	Name string `json:"name"`
}

var environmentRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Min(1).Required(),
})

func (rs *RestfulServer) CreateEnvironment(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}

	var req EnvironmentRequest
	if err := environmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	environment, err := rs.Energy.Catalog.CreateEnvironment(c.Request.Context(), userID, req.Name)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, environment)
}

func (rs *RestfulServer) ListEnvironments(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}

	environments, err := rs.Energy.Catalog.EnvironmentsOf(c.Request.Context(), userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, environments)
}

type DeviceRequest struct {
	MacAddress  string `json:"macAddress"`
	Description string `json:"description"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"MacAddress":  z.String().Min(1).Required(),
	"Description": z.String().Optional(),
})

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	if _, ok := rs.userID(c); !ok {
		return
	}
	environmentID := c.Param("environment_id")

	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Energy.Catalog.CreateDevice(c.Request.Context(), environmentID, req.MacAddress, req.Description)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, device)
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	if _, ok := rs.userID(c); !ok {
		return
	}
	environmentID := c.Param("environment_id")

	devices, err := rs.Energy.Catalog.DevicesInEnvironment(c.Request.Context(), environmentID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

// GetStatistics mirrors the dashboard summary: accumulated consumption
// for the day, week, and month containing date, plus catalog counts and
// the average voltage over the day.
func (rs *RestfulServer) GetStatistics(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	ctx := c.Request.Context()

	day, err := energy.ResolveDay(date)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	week, err := energy.ResolveWeek(date)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	month, err := energy.ResolveMonth(date)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	weekly, err := rs.Energy.Aggregate.AccumulatedConsumption(ctx, userID, week)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	monthly, err := rs.Energy.Aggregate.AccumulatedConsumption(ctx, userID, month)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	// The day summary already carries the day's consumption total.
	summary, err := rs.Energy.Aggregate.StatisticsSummary(ctx, userID, day)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dailyConsumption":   summary.TotalConsumption,
		"weeklyConsumption":  weekly,
		"monthlyConsumption": monthly,
		"deviceCount":        summary.DeviceCount,
		"environmentCount":   summary.EnvironmentCount,
		"averageVoltage":     summary.AverageVoltage,
	})
}

func (rs *RestfulServer) GetConsumption(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}

	window, err := energy.Resolve(energy.Granularity(c.Query("granularity")), c.Query("date"))
	if err != nil {
		rs.respondError(c, err)
		return
	}

	consumption, err := rs.Energy.Aggregate.AccumulatedConsumption(c.Request.Context(), userID, window)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"granularity": window.Granularity,
		"start":       window.Start,
		"end":         window.End,
		"consumption": consumption,
	})
}

func (rs *RestfulServer) GetHourlySeries(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}

	window, err := energy.ResolveDay(c.Query("date"))
	if err != nil {
		rs.respondError(c, err)
		return
	}

	metric := energy.SeriesMetric(c.DefaultQuery("metric", string(energy.SeriesMetricConsumption)))

	series, err := rs.Energy.Aggregate.HourlySeries(c.Request.Context(), userID, window, metric)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metric": metric,
		"series": series,
	})
}

func (rs *RestfulServer) AnalyzePowerQuality(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}

	window, err := energy.ResolveRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		rs.respondError(c, err)
		return
	}

	snapshot, err := rs.Energy.Quality.AnalyzePowerQuality(c.Request.Context(), userID, window)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (rs *RestfulServer) ListPowerQualityHistory(c *gin.Context) {
	userID, ok := rs.userID(c)
	if !ok {
		return
	}

	snapshots, err := rs.Energy.Quality.ListPowerQualityHistory(c.Request.Context(), userID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
