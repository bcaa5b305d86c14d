package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/middleware"
)

// badBinding answers a failed ShouldBind*. Slot format errors get their
// own code; everything else is invalid_request.
func badBinding(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if fe.Tag() == "date" || fe.Tag() == "clock" {
				httperr.BadRequest(c, "invalid_date_or_time", "Date must be YYYY-MM-DD and time HH:MM.")
				return
			}
		}
		httperr.BadRequest(c, "invalid_request", "Field "+ve[0].Field()+" failed rule "+ve[0].Tag()+".")
		return
	}
	httperr.BadRequest(c, "invalid_request", "Malformed request body.")
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid "+name+".")
		return 0, false
	}
	return id, true
}

// actor is only called behind AuthMiddleware.
func actor(c *gin.Context) auth.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}
