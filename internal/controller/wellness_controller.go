package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/dto"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/serverutils"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/service"
)

type IWellnessController interface {
	RegisterRoutes(r fiber.Router)
	UpsertProfile(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	ListCrisisLogs(ctx *fiber.Ctx) error
}

type wellnessController struct {
	wellnessService service.IWellnessService
}

func NewWellnessController(wellnessService service.IWellnessService) IWellnessController {
	return &wellnessController{
		wellnessService: wellnessService,
	}
}

func (c *wellnessController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wellness/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put("profile", c.UpsertProfile)
	h.Get("profile", c.GetProfile)

	admin := h.Group("/admin")
	admin.Use(serverutils.AdminOnly)
	admin.Get("crisis-logs", c.ListCrisisLogs)
}

func (c *wellnessController) UpsertProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertWellnessProfileRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.wellnessService.UpsertProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Profile saved", res)
}

func (c *wellnessController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.wellnessService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show profile", res)
}

func (c *wellnessController) ListCrisisLogs(ctx *fiber.Ctx) error {
	riskLevel := ctx.Query("risk_level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.wellnessService.ListCrisisLogs(ctx.Context(), riskLevel, limit, offset)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list crisis logs", res)
}
