package controller

import (
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Initiate(ctx *fiber.Ctx) error
	SuccessCallback(ctx *fiber.Ctx) error
	FailCallback(ctx *fiber.Ctx) error
	CancelCallback(ctx *fiber.Ctx) error
	MyDonations(ctx *fiber.Ctx) error
	DonationDetail(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payments")

	// Gateway callbacks arrive server-to-server without our auth header.
	h.Post("/success", c.SuccessCallback)
	h.Post("/fail", c.FailCallback)
	h.Post("/cancel", c.CancelCallback)

	h.Post("/initiate", serverutils.JwtMiddleware, c.Initiate)
	h.Get("/mine", serverutils.JwtMiddleware, c.MyDonations)
	h.Get("/:id", serverutils.JwtMiddleware, c.DonationDetail)
}

func (c *paymentController) Initiate(ctx *fiber.Ctx) error {
	var req dto.InitiateDonationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.Initiate(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success initiate donation", res))
}

func (c *paymentController) SuccessCallback(ctx *fiber.Ctx) error {
	var cb dto.GatewayCallback
	if err := ctx.BodyParser(&cb); err != nil {
		return err
	}

	if err := c.paymentService.HandleSuccess(ctx.Context(), &cb); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Payment recorded", nil))
}

func (c *paymentController) FailCallback(ctx *fiber.Ctx) error {
	var cb dto.GatewayCallback
	if err := ctx.BodyParser(&cb); err != nil {
		return err
	}

	if err := c.paymentService.HandleFailure(ctx.Context(), &cb); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Payment failure recorded", nil))
}

// CancelCallback treats a cancelled checkout the same as a failed one: the
// pending row is marked failed and the campaign total is untouched.
func (c *paymentController) CancelCallback(ctx *fiber.Ctx) error {
	var cb dto.GatewayCallback
	if err := ctx.BodyParser(&cb); err != nil {
		return err
	}

	if err := c.paymentService.HandleFailure(ctx.Context(), &cb); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Payment cancellation recorded", nil))
}

func (c *paymentController) MyDonations(ctx *fiber.Ctx) error {
	res, err := c.paymentService.MyDonations(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my donations", res))
}

func (c *paymentController) DonationDetail(ctx *fiber.Ctx) error {
	donationId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.paymentService.DonationDetail(ctx.Context(), currentUserId(ctx), donationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch donation", res))
}
