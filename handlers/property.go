package handlers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/summer0102/real-estate-showcase/config"
	"github.com/summer0102/real-estate-showcase/models"
	"github.com/summer0102/real-estate-showcase/prometheus"
	"github.com/summer0102/real-estate-showcase/services"
)

type PropertyController struct {
	svc services.PropertyService
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		svc: services.NewPropertyService(config.GetCollection(collectionName)),
	}
}

// NewPropertyControllerWithService is used by tests and by callers that
// already hold a service.
func NewPropertyControllerWithService(svc services.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

func parseFilter(c echo.Context) models.PropertyFilter {
	var filter models.PropertyFilter

	filter.PropertyType = c.QueryParam("property_type")
	filter.RoomType = c.QueryParam("room_type")

	if v := c.QueryParam("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = f
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = f
		}
	}
	if v := c.QueryParam("min_area"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinArea = f
		}
	}
	if v := c.QueryParam("max_area"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxArea = f
		}
	}

	return filter
}

// ListProperties serves the public listing grid: available properties
// only, newest first, optionally narrowed by filter params and further
// refined by the free-text q param.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()
	filter := parseFilter(c)

	var (
		properties []models.Property
		err        error
	)
	if filter.IsEmpty() {
		properties, err = pc.svc.ListAvailable(ctx)
	} else {
		properties, err = pc.svc.ListFiltered(ctx, filter)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	if q := c.QueryParam("q"); q != "" {
		properties = services.Refine(properties, q)
	}

	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	property, err := pc.svc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	prometheus.PropertyViewsCounter.Inc()

	return c.JSON(http.StatusOK, property)
}
