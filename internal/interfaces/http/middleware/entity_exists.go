package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/storeapi/backend/internal/domain/shared"
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// EntityExists returns a middleware that verifies the entity addressed by the
// :id route parameter actually exists before the handler runs. It is attached
// to update and delete routes for every entity type.
//
// A missing or non-numeric id aborts with 400 and the literal "Bad Id
// parameter". A well-formed id with no matching record aborts with 400 and an
// empty message: the failure is visible from the status alone and the guard
// deliberately adds nothing a caller could confuse with a handler rejection.
// The fetched match is discarded; handlers re-read whatever state they need.
func EntityExists[E any](repo shared.Repository[E], log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn("Rejecting request with bad id parameter",
				zap.String("path", c.Request.URL.Path),
				zap.String("id", raw),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, store.BadIDParameter))
			return
		}

		matches, err := repo.FindByCondition(c.Request.Context(), shared.IDEquals(id))
		if err != nil {
			log.Error("Entity existence lookup failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int64("id", id),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
			return
		}

		if len(matches) == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, ""))
			return
		}

		c.Next()
	}
}
