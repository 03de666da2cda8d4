package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateNotFound(ctx iris.Context) {
	JSONError(ctx, http.StatusNotFound, "not_found", "Not found")
}

func CreateInternalServerError(ctx iris.Context) {
	JSONError(ctx, http.StatusInternalServerError, "server_error", "Server error")
}

// HandleValidationErrors renders validator.v10 failures as a 422 with the
// offending fields; any other read error falls back to a plain 400.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, iris.Map{
				"field": fe.Field(),
				"tag":   fe.Tag(),
			})
		}
		ctx.StatusCode(http.StatusUnprocessableEntity)
		ctx.JSON(iris.Map{"error": "validation", "fields": fields})
		return
	}
	JSONError(ctx, http.StatusBadRequest, "invalid_payload", err.Error())
}
