package routes

import (
	"net/http"
	"strings"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/TommyTeaVee/impilo-regform/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

type LoginAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin - POST /api/auth/login
func AdminLogin(ctx iris.Context) {
	var input LoginAdminInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var admin models.Admin
	err := storage.DB.Where("email = ?", strings.ToLower(input.Email)).First(&admin).Error
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_credentials", "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_credentials", "Invalid credentials")
		return
	}

	tokenPair, err := utils.CreateTokenPair(&admin)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
		"email":        admin.Email,
	})
}
