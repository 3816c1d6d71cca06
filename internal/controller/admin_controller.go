package controller

import (
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService   service.IAdminService
	paymentService service.IPaymentService
}

func NewAdminController(adminService service.IAdminService, paymentService service.IPaymentService) IAdminController {
	return &adminController{
		adminService:   adminService,
		paymentService: paymentService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.RequireRole("admin"))

	h.Get("/ngos/pending", c.PendingNGOs)
	h.Put("/ngos/:id", c.HandleNGO)

	h.Get("/campaigns/pending", c.PendingCampaigns)
	h.Put("/campaigns/:id/approval", c.HandleCampaign)

	h.Get("/requests/pending", c.PendingRequests)
	h.Put("/requests/:id/approval", c.HandleRequest)

	h.Get("/users", c.ListUsers)
	h.Delete("/users/:id", c.DeleteUser)
	h.Get("/items", c.ListItems)
	h.Delete("/items/:id", c.DeleteItem)
	h.Get("/campaigns", c.ListCampaigns)
	h.Delete("/campaigns/:id", c.DeleteCampaign)
	h.Delete("/payments/:id", c.DeletePayment)

	h.Get("/categories", c.ListCategories)
	h.Post("/categories", c.CreateCategory)
	h.Put("/categories/:id", c.UpdateCategory)
	h.Delete("/categories/:id", c.DeleteCategory)

	h.Get("/campaign-categories", c.ListCampaignCategories)
	h.Post("/campaign-categories", c.CreateCampaignCategory)
	h.Put("/campaign-categories/:id", c.UpdateCampaignCategory)
	h.Delete("/campaign-categories/:id", c.DeleteCampaignCategory)

	h.Post("/reward-tiers", c.CreateRewardTier)
	h.Put("/reward-tiers/:id", c.UpdateRewardTier)
	h.Delete("/reward-tiers/:id", c.DeleteRewardTier)

	h.Get("/contact-messages", c.ListContactMessages)
	h.Get("/stats", c.Stats)
}

func pathId(ctx *fiber.Ctx) uuid.UUID {
	id, _ := uuid.Parse(ctx.Params("id"))
	return id
}

func (c *adminController) PendingNGOs(ctx *fiber.Ctx) error {
	res, err := c.adminService.PendingNGOs(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch pending ngos", res))
}

func (c *adminController) HandleNGO(ctx *fiber.Ctx) error {
	var req dto.ApprovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.HandleNGO(ctx.Context(), pathId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success handle ngo approval", nil))
}

func (c *adminController) PendingCampaigns(ctx *fiber.Ctx) error {
	res, err := c.adminService.PendingCampaigns(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch pending campaigns", res))
}

func (c *adminController) HandleCampaign(ctx *fiber.Ctx) error {
	var req dto.ApprovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.HandleCampaign(ctx.Context(), pathId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success handle campaign approval", nil))
}

func (c *adminController) PendingRequests(ctx *fiber.Ctx) error {
	res, err := c.adminService.PendingRequests(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch pending requests", res))
}

func (c *adminController) HandleRequest(ctx *fiber.Ctx) error {
	var req dto.ApprovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.HandleRequest(ctx.Context(), pathId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success handle request approval", nil))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch users", res))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	if err := c.adminService.DeleteUser(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}

func (c *adminController) ListItems(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListItems(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch items", res))
}

func (c *adminController) DeleteItem(ctx *fiber.Ctx) error {
	if err := c.adminService.DeleteItem(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete item", nil))
}

func (c *adminController) ListCampaigns(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListCampaigns(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch campaigns", res))
}

func (c *adminController) DeleteCampaign(ctx *fiber.Ctx) error {
	if err := c.adminService.DeleteCampaign(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete campaign", nil))
}

func (c *adminController) DeletePayment(ctx *fiber.Ctx) error {
	if err := c.paymentService.AdminDelete(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete payment", nil))
}

func (c *adminController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch categories", res))
}

func (c *adminController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *adminController) UpdateCategory(ctx *fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateCategory(ctx.Context(), pathId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *adminController) DeleteCategory(ctx *fiber.Ctx) error {
	if err := c.adminService.DeleteCategory(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete category", nil))
}

func (c *adminController) ListCampaignCategories(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListCampaignCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch campaign categories", res))
}

func (c *adminController) CreateCampaignCategory(ctx *fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateCampaignCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create campaign category", res))
}

func (c *adminController) UpdateCampaignCategory(ctx *fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateCampaignCategory(ctx.Context(), pathId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update campaign category", res))
}

func (c *adminController) DeleteCampaignCategory(ctx *fiber.Ctx) error {
	if err := c.adminService.DeleteCampaignCategory(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete campaign category", nil))
}

func (c *adminController) CreateRewardTier(ctx *fiber.Ctx) error {
	var req dto.UpsertRewardTierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateRewardTier(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create reward tier", res))
}

func (c *adminController) UpdateRewardTier(ctx *fiber.Ctx) error {
	var req dto.UpsertRewardTierRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateRewardTier(ctx.Context(), pathId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update reward tier", res))
}

func (c *adminController) DeleteRewardTier(ctx *fiber.Ctx) error {
	if err := c.adminService.DeleteRewardTier(ctx.Context(), pathId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete reward tier", nil))
}

func (c *adminController) ListContactMessages(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListContactMessages(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch contact messages", res))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.adminService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch platform stats", res))
}
