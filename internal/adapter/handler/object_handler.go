package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/geobounds-service/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/httputil"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/object"
)

type ObjectHandler struct {
	objectSvc ObjectService
	field     *fielddef.Geobounds
}

func NewObjectHandler(objectSvc ObjectService, field *fielddef.Geobounds) *ObjectHandler {
	return &ObjectHandler{
		objectSvc: objectSvc,
		field:     field,
	}
}

func (h *ObjectHandler) Create(c *gin.Context) {
	var req request.CreateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	userID := httputil.GetUserID(c)

	o, err := h.objectSvc.Create(c.Request.Context(), object.CreateInput{
		UserID: userID,
		Title:  req.Title,
		Bounds: h.field.DataFromEditmode(req.Bounds),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.Created(c, response.ObjectFromEntity(o, h.field))
}

func (h *ObjectHandler) List(c *gin.Context) {
	var req request.ListObjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	userID := httputil.GetUserID(c)

	objects, pageInfo, err := h.objectSvc.List(c.Request.Context(), object.ListInput{
		UserID:  userID,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ObjectsListResponse{
		Objects:    response.GridFromEntities(objects, h.field),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *ObjectHandler) Get(c *gin.Context) {
	objectID, ok := parseObjectID(c)
	if !ok {
		return
	}

	o, err := h.objectSvc.GetByID(c.Request.Context(), httputil.GetUserID(c), objectID)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ObjectFromEntity(o, h.field))
}

func (h *ObjectHandler) GetBounds(c *gin.Context) {
	objectID, ok := parseObjectID(c)
	if !ok {
		return
	}

	b, err := h.objectSvc.GetBounds(c.Request.Context(), objectID)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.BoundsResponse{
		ObjectID: objectID,
		Bounds:   h.field.DataForEditmode(b),
	})
}

func (h *ObjectHandler) Update(c *gin.Context) {
	objectID, ok := parseObjectID(c)
	if !ok {
		return
	}

	var req request.UpdateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	input := object.UpdateInput{Title: req.Title}
	if req.Bounds.Set {
		input.SetBounds = true
		input.Bounds = h.field.DataFromEditmode(req.Bounds.Payload)
	}

	o, err := h.objectSvc.Update(c.Request.Context(), httputil.GetUserID(c), objectID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ObjectFromEntity(o, h.field))
}

func (h *ObjectHandler) Delete(c *gin.Context) {
	objectID, ok := parseObjectID(c)
	if !ok {
		return
	}

	if err := h.objectSvc.Delete(c.Request.Context(), httputil.GetUserID(c), objectID); err != nil {
		respondError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *ObjectHandler) ListVersions(c *gin.Context) {
	objectID, ok := parseObjectID(c)
	if !ok {
		return
	}

	versions, err := h.objectSvc.ListVersions(c.Request.Context(), httputil.GetUserID(c), objectID)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, gin.H{"versions": response.VersionsFromEntities(versions, h.field)})
}

func (h *ObjectHandler) GetVersion(c *gin.Context) {
	objectID, ok := parseObjectID(c)
	if !ok {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_VERSION", "invalid version number")
		return
	}

	detail, err := h.objectSvc.GetVersion(c.Request.Context(), httputil.GetUserID(c), objectID, number)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.VersionDetailResponse{
		VersionResponse: response.VersionFromEntity(detail.Version, h.field),
		Bounds:          h.field.DataForEditmode(detail.Bounds),
	})
}

func parseObjectID(c *gin.Context) (uuid.UUID, bool) {
	objectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid object id")
		return uuid.Nil, false
	}
	return objectID, true
}
