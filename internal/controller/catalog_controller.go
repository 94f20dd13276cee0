package controller

import (
	"ai-travelmate-be/internal/pkg/serverutils"
	"ai-travelmate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListCities(ctx *fiber.Ctx) error
	ListStations(ctx *fiber.Ctx) error
	ListRoutes(ctx *fiber.Ctx) error
	PopularCorridors(ctx *fiber.Ctx) error
	ListAlerts(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

// RegisterRoutes wires the catalog endpoints. All of them are public reads;
// the catalog carries no traveller data.
func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("cities", c.ListCities)
	h.Get("stations", c.ListStations)
	h.Get("routes", c.ListRoutes)
	h.Get("popular-corridors", c.PopularCorridors)
	h.Get("alerts", c.ListAlerts)
}

func (c *catalogController) ListCities(ctx *fiber.Ctx) error {
	query := ctx.Query("query", "")

	res, err := c.catalogService.ListCities(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list cities", res))
}

func (c *catalogController) ListStations(ctx *fiber.Ctx) error {
	city := ctx.Query("city", "")

	res, err := c.catalogService.ListStations(ctx.Context(), city)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list stations", res))
}

func (c *catalogController) ListRoutes(ctx *fiber.Ctx) error {
	origin := ctx.Query("origin", "")
	destination := ctx.Query("destination", "")
	mode := ctx.Query("mode", "")

	res, err := c.catalogService.ListRoutes(ctx.Context(), origin, destination, mode)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list routes", res))
}

func (c *catalogController) PopularCorridors(ctx *fiber.Ctx) error {
	res, err := c.catalogService.PopularCorridors(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list popular corridors", res))
}

func (c *catalogController) ListAlerts(ctx *fiber.Ctx) error {
	origin := ctx.Query("origin", "")
	destination := ctx.Query("destination", "")
	mode := ctx.Query("mode", "")

	res, err := c.catalogService.ListActiveAlerts(ctx.Context(), origin, destination, mode)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list alerts", res))
}
