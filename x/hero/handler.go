// Package hero is handling the hero records behind api/heroes
package hero

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/tourofheroes/core"
)

var tracer = otel.Tracer("hero")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.HeroService
}

// NewHandler creates a new handler
func NewHandler(service core.HeroService) Handler {
	return &handler{service: service}
}

type createRequest struct {
	Name string `json:"name"`
}

// List returns every hero, or the ones matching ?name=
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Hero.Handler.List")
	defer span.End()

	var heroes []core.Hero
	var err error

	name := c.QueryParam("name")
	if name != "" {
		heroes, err = h.service.Search(ctx, name)
	} else {
		heroes, err = h.service.List(ctx)
	}
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, core.ErrorResponse{Error: "Internal server error", Message: err.Error()})
	}

	return c.JSON(http.StatusOK, core.Envelope[[]core.Hero]{Data: heroes})
}

// Get returns a hero by id
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Hero.Handler.Get")
	defer span.End()

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: err.Error()})
	}

	hero, err := h.service.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, core.Envelope[core.Hero]{Data: hero})
}

// Create registers a new hero
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Hero.Handler.Create")
	defer span.End()

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: err.Error()})
	}

	created, err := h.service.Create(ctx, request.Name)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, core.Envelope[core.Hero]{Data: created})
}

// Update replaces a hero
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Hero.Handler.Update")
	defer span.End()

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: err.Error()})
	}

	var request core.Hero
	err = c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: err.Error()})
	}

	if request.ID != 0 && request.ID != id {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: "id mismatch"})
	}
	request.ID = id

	_, err = h.service.Update(ctx, request)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a hero
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Hero.Handler.Delete")
	defer span.End()

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: err.Error()})
	}

	err = h.service.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, errors.New("id is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}

	return uint(id), nil
}

func respondError(c echo.Context, err error) error {
	var notFound core.ErrorNotFound
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, core.ErrorResponse{Error: "Hero not found"})
	}

	var invalid core.ErrorInvalidArgument
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, core.ErrorResponse{Error: "Invalid request", Message: invalid.Reason})
	}

	return c.JSON(http.StatusInternalServerError, core.ErrorResponse{Error: "Internal server error", Message: err.Error()})
}
