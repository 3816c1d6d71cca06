package controller

import (
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	MyRequests(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	BrowseFulfillable(ctx *fiber.Ctx) error
	DonateToRequest(ctx *fiber.Ctx) error
	MarkReceived(ctx *fiber.Ctx) error
	MyPledges(ctx *fiber.Ctx) error
}

type requestController struct {
	requestService service.IRequestService
}

func NewRequestController(requestService service.IRequestService) IRequestController {
	return &requestController{
		requestService: requestService,
	}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/requests")
	h.Get("/browse", c.BrowseFulfillable)

	h.Use(serverutils.JwtMiddleware)
	h.Get("/mine", c.MyRequests)
	h.Get("/pledges/mine", c.MyPledges)
	h.Put("/pledges/:pledgeId/received", c.MarkReceived)
	h.Post("", c.Create)
	h.Get("/:id", c.Detail)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/donate", c.DonateToRequest)
}

func (c *requestController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRequestItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create request", res))
}

func (c *requestController) Update(ctx *fiber.Ctx) error {
	requestId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateRequestItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.Update(ctx.Context(), currentUserId(ctx), requestId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update request", res))
}

func (c *requestController) Delete(ctx *fiber.Ctx) error {
	requestId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.requestService.Delete(ctx.Context(), currentUserId(ctx), requestId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete request", nil))
}

func (c *requestController) MyRequests(ctx *fiber.Ctx) error {
	res, err := c.requestService.MyRequests(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my requests", res))
}

func (c *requestController) Detail(ctx *fiber.Ctx) error {
	requestId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.requestService.Detail(ctx.Context(), requestId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch request", res))
}

func (c *requestController) BrowseFulfillable(ctx *fiber.Ctx) error {
	res, err := c.requestService.BrowseFulfillable(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success browse requests", res))
}

func (c *requestController) DonateToRequest(ctx *fiber.Ctx) error {
	requestId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.DonateToRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.DonateToRequest(ctx.Context(), currentUserId(ctx), requestId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success donate to request", res))
}

func (c *requestController) MarkReceived(ctx *fiber.Ctx) error {
	pledgeId, _ := uuid.Parse(ctx.Params("pledgeId"))

	res, err := c.requestService.MarkReceived(ctx.Context(), currentUserId(ctx), pledgeId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark received", res))
}

func (c *requestController) MyPledges(ctx *fiber.Ctx) error {
	res, err := c.requestService.MyPledges(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my pledges", res))
}
