package controller

import (
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDonationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Explore(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	MyDonations(ctx *fiber.Ctx) error
	SubmitClaim(ctx *fiber.Ctx) error
	HandleClaim(ctx *fiber.Ctx) error
	CompleteClaim(ctx *fiber.Ctx) error
	MyClaims(ctx *fiber.Ctx) error
	ItemClaims(ctx *fiber.Ctx) error
	SubmitReview(ctx *fiber.Ctx) error
}

type donationController struct {
	donationService service.IDonationService
}

func NewDonationController(donationService service.IDonationService) IDonationController {
	return &donationController{
		donationService: donationService,
	}
}

func (c *donationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/donations")
	h.Get("", c.Explore)

	h.Use(serverutils.JwtMiddleware)
	h.Get("/mine", c.MyDonations)
	h.Get("/claims/mine", c.MyClaims)
	h.Put("/claims/:claimId", c.HandleClaim)
	h.Put("/claims/:claimId/complete", c.CompleteClaim)
	h.Post("", c.Create)
	h.Get("/:id", c.Detail)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/claims", c.SubmitClaim)
	h.Get("/:id/claims", c.ItemClaims)
	h.Post("/:id/reviews", c.SubmitReview)
}

func (c *donationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDonationItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create donation item", res))
}

func (c *donationController) Update(ctx *fiber.Ctx) error {
	itemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateDonationItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.Update(ctx.Context(), currentUserId(ctx), itemId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update donation item", res))
}

func (c *donationController) Delete(ctx *fiber.Ctx) error {
	itemId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.donationService.Delete(ctx.Context(), currentUserId(ctx), itemId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete donation item", nil))
}

func (c *donationController) Explore(ctx *fiber.Ctx) error {
	var query dto.ExploreItemsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.donationService.Explore(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success explore donation items", res))
}

func (c *donationController) Detail(ctx *fiber.Ctx) error {
	itemId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.donationService.Detail(ctx.Context(), itemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch donation item", res))
}

func (c *donationController) MyDonations(ctx *fiber.Ctx) error {
	res, err := c.donationService.MyDonations(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my donations", res))
}

func (c *donationController) SubmitClaim(ctx *fiber.Ctx) error {
	itemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SubmitClaimRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.SubmitClaim(ctx.Context(), currentUserId(ctx), itemId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit claim", res))
}

func (c *donationController) HandleClaim(ctx *fiber.Ctx) error {
	claimId, _ := uuid.Parse(ctx.Params("claimId"))

	var req dto.HandleClaimRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.HandleClaim(ctx.Context(), currentUserId(ctx), claimId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle claim", res))
}

func (c *donationController) CompleteClaim(ctx *fiber.Ctx) error {
	claimId, _ := uuid.Parse(ctx.Params("claimId"))

	res, err := c.donationService.CompleteClaim(ctx.Context(), currentUserId(ctx), claimId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete claim", res))
}

func (c *donationController) MyClaims(ctx *fiber.Ctx) error {
	res, err := c.donationService.MyClaims(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my claims", res))
}

func (c *donationController) ItemClaims(ctx *fiber.Ctx) error {
	itemId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.donationService.ItemClaims(ctx.Context(), currentUserId(ctx), itemId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch item claims", res))
}

func (c *donationController) SubmitReview(ctx *fiber.Ctx) error {
	itemId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SubmitReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.SubmitReview(ctx.Context(), currentUserId(ctx), itemId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit review", res))
}
