package controller

import (
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICampaignController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	MyCampaigns(ctx *fiber.Ctx) error
	Explore(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	AddUpdate(ctx *fiber.Ctx) error
}

type campaignController struct {
	campaignService service.ICampaignService
}

func NewCampaignController(campaignService service.ICampaignService) ICampaignController {
	return &campaignController{
		campaignService: campaignService,
	}
}

func (c *campaignController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/campaigns")
	h.Get("", c.Explore)
	h.Get("/:id", c.Detail)

	h.Post("", serverutils.JwtMiddleware, serverutils.RequireRole("ngo"), c.Create)
	h.Get("/mine/list", serverutils.JwtMiddleware, serverutils.RequireRole("ngo"), c.MyCampaigns)
	h.Put("/:id", serverutils.JwtMiddleware, serverutils.RequireRole("ngo"), c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, serverutils.RequireRole("ngo"), c.Delete)
	h.Post("/:id/updates", serverutils.JwtMiddleware, serverutils.RequireRole("ngo"), c.AddUpdate)
}

func (c *campaignController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.campaignService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create campaign", res))
}

func (c *campaignController) Update(ctx *fiber.Ctx) error {
	campaignId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateCampaignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.campaignService.Update(ctx.Context(), currentUserId(ctx), campaignId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update campaign", res))
}

func (c *campaignController) Delete(ctx *fiber.Ctx) error {
	campaignId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.campaignService.Delete(ctx.Context(), currentUserId(ctx), campaignId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete campaign", nil))
}

func (c *campaignController) MyCampaigns(ctx *fiber.Ctx) error {
	res, err := c.campaignService.MyCampaigns(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my campaigns", res))
}

func (c *campaignController) Explore(ctx *fiber.Ctx) error {
	search := ctx.Query("search", "")

	var categoryId, ngoId *uuid.UUID
	if raw := ctx.Query("category", ""); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			categoryId = &parsed
		}
	}
	if raw := ctx.Query("ngo", ""); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			ngoId = &parsed
		}
	}

	res, err := c.campaignService.Explore(ctx.Context(), search, categoryId, ngoId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success explore campaigns", res))
}

func (c *campaignController) Detail(ctx *fiber.Ctx) error {
	campaignId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.campaignService.Detail(ctx.Context(), campaignId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch campaign", res))
}

func (c *campaignController) AddUpdate(ctx *fiber.Ctx) error {
	campaignId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.AddCampaignUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.campaignService.AddUpdate(ctx.Context(), currentUserId(ctx), campaignId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add campaign update", res))
}
