package routes

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/TommyTeaVee/impilo-regform/services"
	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/kataras/iris/v12"
)

// 12 upload slots x a few MB each; anything larger is hostile
const maxSubmissionBytes = 64 << 20

// submission is swappable so tests can fake the media uploader
var submission = services.NewSubmissionService()

// CreateRegistration - POST /api/registration (multipart form)
func CreateRegistration(ctx iris.Context) {
	ctx.SetMaxRequestBodySize(maxSubmissionBytes)

	if err := ctx.Request().ParseMultipartForm(maxSubmissionBytes); err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "expected multipart form data"})
		return
	}
	form := ctx.Request().MultipartForm

	reg, err := submission.Submit(services.SubmissionInput{
		Values: url.Values(form.Value),
		Files:  form.File,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": vErr.Message})
			return
		}
		// Media and persistence failures both surface as a generic server
		// error; the log line keeps the underlying cause diagnosable.
		log.Println("create registration:", err)
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "Server error", "details": err.Error()})
		return
	}

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{"message": "Registration saved", "registration": reg})
}

// ListRegistrations - GET /api/registration (public, newest first, no paging)
func ListRegistrations(ctx iris.Context) {
	regs, err := storage.Registrations.ListAll()
	if err != nil {
		log.Println("list registrations:", err)
		ctx.StopWithJSON(http.StatusInternalServerError, iris.Map{"error": "Server error"})
		return
	}
	ctx.JSON(regs)
}
