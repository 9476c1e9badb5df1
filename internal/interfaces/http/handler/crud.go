package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/storeapi/backend/internal/domain/shared"
	"github.com/storeapi/backend/internal/domain/store"
	"github.com/storeapi/backend/internal/interfaces/http/dto"
	"github.com/storeapi/backend/internal/interfaces/http/mapper"
	"github.com/storeapi/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// EntityHandler serves the full CRUD surface for one entity type. It is
// instantiated once per entity with that entity's repository, mapping pair,
// and declared dependency checks.
type EntityHandler[E any, V any] struct {
	BaseHandler
	name        string
	prefix      string
	repo        shared.Repository[E]
	mapping     mapper.Mapping[E, V]
	entityID    func(*E) int64
	placeholder func(int64) *E
	checks      []store.DependencyCheck
	log         *zap.Logger
}

// NewEntityHandler creates a CRUD handler for one entity type
func NewEntityHandler[E any, V any](
	name, prefix string,
	repo shared.Repository[E],
	mapping mapper.Mapping[E, V],
	entityID func(*E) int64,
	placeholder func(int64) *E,
	checks []store.DependencyCheck,
	log *zap.Logger,
) *EntityHandler[E, V] {
	return &EntityHandler[E, V]{
		name:        name,
		prefix:      prefix,
		repo:        repo,
		mapping:     mapping,
		entityID:    entityID,
		placeholder: placeholder,
		checks:      checks,
		log:         log.Named(prefix[1:]),
	}
}

// RegisterRoutes registers the CRUD routes for this entity type. The
// existence guard protects the routes that address a specific record
// for mutation.
func (h *EntityHandler[E, V]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group(h.prefix)
	guard := middleware.EntityExists[E](h.repo, h.log)

	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", guard, h.Update)
	g.DELETE("/:id", guard, h.Delete)
}

// bindError rejects a request body that could not be bound. Field-level
// validation failures get a per-field breakdown; anything else is reported
// as malformed JSON.
func (h *EntityHandler[E, V]) bindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		middleware.HandleValidationError(c, err)
		return
	}
	h.Error(c, 400, dto.ErrCodeInvalidJSON, "Invalid request body")
}

// List returns every record of this entity type
func (h *EntityHandler[E, V]) List(c *gin.Context) {
	entities, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mapper.ToViews(h.mapping, entities))
}

// GetByID returns the record with the given id. An absent record is not an
// error at this surface: the response succeeds with null data.
func (h *EntityHandler[E, V]) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, store.BadIDParameter)
		return
	}

	entity, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.Success(c, nil)
			return
		}
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.mapping.ToView(entity))
}

// Create inserts a new record. The existence lookup runs before the sentinel
// check; the two rejections are mutually exclusive because id 0 never matches
// a persisted record.
func (h *EntityHandler[E, V]) Create(c *gin.Context) {
	var view V
	if err := c.ShouldBindJSON(&view); err != nil {
		h.bindError(c, err)
		return
	}

	entity := h.mapping.ToEntity(view)
	id := h.entityID(entity)

	matches, err := h.repo.FindByCondition(c.Request.Context(), shared.IDEquals(id))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if len(matches) > 0 {
		h.BadRequest(c, store.ExistsIDMessage(h.name, id))
		return
	}
	if id == 0 {
		h.BadRequest(c, store.InvalidIDMessage(h.name))
		return
	}

	if err := h.repo.Create(c.Request.Context(), entity); err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+strconv.FormatInt(id, 10))
	h.Created(c, h.mapping.ToView(entity))
}

// Update replaces the record whose id is in the route. The guard has already
// verified existence; the handler only checks that the body agrees on which
// record is addressed.
func (h *EntityHandler[E, V]) Update(c *gin.Context) {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, store.BadIDParameter)
		return
	}

	var view V
	if err := c.ShouldBindJSON(&view); err != nil {
		h.bindError(c, err)
		return
	}

	entity := h.mapping.ToEntity(view)
	if routeID != h.entityID(entity) {
		h.BadRequest(c, store.IDNotMatchMessage())
		return
	}

	if err := h.repo.Update(c.Request.Context(), entity); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes the record whose id is in the route, unless dependent
// records still reference it. Deletion goes through a placeholder entity
// carrying only the id.
func (h *EntityHandler[E, V]) Delete(c *gin.Context) {
	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, store.BadIDParameter)
		return
	}

	dependent, err := store.FirstDependent(c.Request.Context(), routeID, h.checks)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if dependent != "" {
		h.BadRequest(c, store.DeleteErrorMessage(h.name, routeID, dependent))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), h.placeholder(routeID)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
