package controller

import (
	"givebridge-be/internal/pkg/serverutils"
	"givebridge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UnreadCount(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
}

func NewNotificationController(notificationService service.INotificationService) INotificationController {
	return &notificationController{
		notificationService: notificationService,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications", serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get("/unread-count", c.UnreadCount)
}

// List returns the inbox newest first and marks everything read.
func (c *notificationController) List(ctx *fiber.Ctx) error {
	res, err := c.notificationService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch notifications", res))
}

func (c *notificationController) UnreadCount(ctx *fiber.Ctx) error {
	count, err := c.notificationService.UnreadCount(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch unread count", fiber.Map{"count": count}))
}
