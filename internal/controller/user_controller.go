package controller

import (
	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateDonorProfile(ctx *fiber.Ctx) error
	UpdateNGOProfile(ctx *fiber.Ctx) error
	UpdateAvatar(ctx *fiber.Ctx) error
	DeleteAccount(ctx *fiber.Ctx) error
	SubmitContactMessage(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.SubmitContactMessage)

	h := r.Group("/users", serverutils.JwtMiddleware)
	h.Get("/profile", c.Profile)
	h.Put("/profile/donor", c.UpdateDonorProfile)
	h.Put("/profile/ngo", serverutils.RequireRole("ngo"), c.UpdateNGOProfile)
	h.Put("/avatar", c.UpdateAvatar)
	h.Delete("/account", c.DeleteAccount)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	res, err := c.userService.Profile(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch profile", res))
}

func (c *userController) UpdateDonorProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateDonorProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateDonorProfile(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) UpdateNGOProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateNGOProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateNGOProfile(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update ngo profile", res))
}

func (c *userController) UpdateAvatar(ctx *fiber.Ctx) error {
	var req dto.UpdateAvatarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.UpdateAvatar(ctx.Context(), currentUserId(ctx), req.AvatarURL); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update avatar", nil))
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	if err := c.userService.DeleteAccount(ctx.Context(), currentUserId(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete account", nil))
}

func (c *userController) SubmitContactMessage(ctx *fiber.Ctx) error {
	var req dto.ContactMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.SubmitContactMessage(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Success submit message", nil))
}
