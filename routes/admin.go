package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/TommyTeaVee/impilo-regform/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

// AdminListRegistrations - GET /api/admin/registrations?page=&limit=&search=&status=&skill=
func AdminListRegistrations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.URLParamIntDefault("limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	filter := storage.RegistrationFilter{
		Search: strings.TrimSpace(ctx.URLParamDefault("search", "")),
		Status: strings.TrimSpace(ctx.URLParamDefault("status", "")),
		Skill:  strings.TrimSpace(ctx.URLParamDefault("skill", "")),
	}

	regs, total, err := storage.Registrations.List(filter, page, limit)
	if err != nil {
		log.Println("admin list registrations:", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Server error")
		return
	}

	ctx.JSON(iris.Map{
		"registrations": regs,
		"total":         total,
		"page":          page,
		"totalPages":    storage.TotalPages(total, limit),
	})
}

// AdminGetRegistration - GET /api/admin/registrations/{id}
func AdminGetRegistration(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	reg, err := storage.Registrations.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrRegistrationNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		log.Println("admin get registration:", err)
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(reg)
}

// AdminUpdateRegistrationStatus - PATCH /api/admin/registrations/{id} { status }
func AdminUpdateRegistrationStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil || !slices.Contains(models.Statuses, body.Status) {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "status must be pending/approved/rejected")
		return
	}

	before, err := storage.Registrations.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrRegistrationNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		log.Println("admin update status:", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	updated, err := storage.Registrations.UpdateStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, storage.ErrRegistrationNotFound) {
			utils.CreateNotFound(ctx)
			return
		}
		log.Println("admin update status:", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "registration.status", id, before, updated)
	ctx.JSON(updated)
}

// AdminDeleteRegistration - DELETE /api/admin/registrations/{id}
// Idempotent: deleting an unknown id still answers with the confirmation.
func AdminDeleteRegistration(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	before, getErr := storage.Registrations.Get(id)

	if err := storage.Registrations.Delete(id); err != nil && !errors.Is(err, storage.ErrRegistrationNotFound) {
		log.Println("admin delete registration:", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	if getErr == nil {
		utils.Audit(ctx, "registration.delete", id, before, nil)
	}
	ctx.JSON(iris.Map{"message": "Deleted successfully"})
}
