package controller

import (
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRewardController interface {
	RegisterRoutes(r fiber.Router)
	MyRewards(ctx *fiber.Ctx) error
	ListTiers(ctx *fiber.Ctx) error
}

type rewardController struct {
	rewardService service.IRewardService
}

func NewRewardController(rewardService service.IRewardService) IRewardController {
	return &rewardController{
		rewardService: rewardService,
	}
}

func (c *rewardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rewards")
	h.Get("/tiers", c.ListTiers)
	h.Get("/mine", serverutils.JwtMiddleware, c.MyRewards)
}

func (c *rewardController) MyRewards(ctx *fiber.Ctx) error {
	res, err := c.rewardService.MyRewards(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch my rewards", res))
}

func (c *rewardController) ListTiers(ctx *fiber.Ctx) error {
	res, err := c.rewardService.ListTiers(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch reward tiers", res))
}
