package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/brunohmlima/cep-forecast/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, pipeline *forecast.Pipeline, cache forecast.LocationCache) {
	v1 := app.Group("/api/v1")

	v1.Get("/lookup", func(c *fiber.Ctx) error {
		req, err := parseLookupQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := pipeline.Resolve(c.UserContext(), req.CEP)
		if err != nil {
			if errors.Is(err, forecast.ErrCEPNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "CEP não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve postal code")
		}

		// Copy so the placeholder fill never leaks into the stored aggregate.
		out := *result
		out.Address = out.Address.WithPlaceholders()
		return c.JSON(out)
	})

	// Cached location for the map-marker bootstrap. Independent of any
	// in-flight lookup.
	v1.Get("/location/cached", func(c *fiber.Ctx) error {
		loc := cache.Load(c.UserContext())
		if loc == nil {
			return fiber.NewError(fiber.StatusNotFound, "no cached location")
		}
		return c.JSON(loc)
	})
}

// lookupQuery holds query parameters for the lookup endpoint. Completeness
// of the CEP is deliberately not validated here; the address resolver owns
// that and answers with the not-found contract.
type lookupQuery struct {
	CEP string `validate:"required"`
}

func parseLookupQuery(c *fiber.Ctx) (lookupQuery, error) {
	var q lookupQuery

	q.CEP = c.Query("cep")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
