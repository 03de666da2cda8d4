package routes

import (
	"log"
	"net/http"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/TommyTeaVee/impilo-regform/utils"
	"github.com/kataras/iris/v12"
)

// AdminStats - GET /api/admin/stats — review queue counts per status
func AdminStats(ctx iris.Context) {
	counts := iris.Map{}
	var total int64
	for _, status := range models.Statuses {
		_, n, err := storage.Registrations.List(storage.RegistrationFilter{Status: status}, 1, 1)
		if err != nil {
			log.Println("admin stats:", err)
			utils.JSONError(ctx, http.StatusInternalServerError, "server_error", "Server error")
			return
		}
		counts[status] = n
		total += n
	}
	counts["total"] = total

	ctx.JSON(iris.Map{"data": counts})
}

// AdminActivity - GET /api/admin/activity — latest audit trail entries
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	if storage.DB != nil {
		storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	ctx.JSON(iris.Map{"data": logs})
}
