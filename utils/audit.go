package utils

import (
	"encoding/json"
	"net"

	"github.com/TommyTeaVee/impilo-regform/models"
	"github.com/TommyTeaVee/impilo-regform/storage"
	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

// Audit appends one audit row for an admin mutation on a registration.
// Best effort: a failed audit write never fails the request.
func Audit(ctx iris.Context, action string, resourceID uint, before interface{}, after interface{}) {
	var beforeStr, afterStr string
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			beforeStr = string(b)
		}
	}
	if after != nil {
		if a, err := json.Marshal(after); err == nil {
			afterStr = string(a)
		}
	}

	var adminID uint
	if tok := jsonWT.Get(ctx); tok != nil {
		if at, ok := tok.(*AccessToken); ok {
			adminID = at.ID
		}
	}

	if storage.DB == nil {
		return
	}

	log := models.AuditLog{
		AdminID:    adminID,
		Action:     action,
		ResourceID: resourceID,
		BeforeJSON: beforeStr,
		AfterJSON:  afterStr,
		IPAddress:  clientIP(ctx),
	}
	storage.DB.Create(&log)
}

func clientIP(ctx iris.Context) string {
	if ip := ctx.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	ip, _, _ := net.SplitHostPort(ctx.RemoteAddr())
	return ip
}
