package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/geobounds-service/internal/domain"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/apperror"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/httputil"
)

func respondError(c *gin.Context, err error) {
	var (
		vErr    *fielddef.ValidationError
		sizeErr *http.MaxBytesError
	)
	switch {
	case errors.As(err, &sizeErr):
		httputil.HandleError(c, apperror.PayloadTooLarge(sizeErr.Limit))
	case errors.As(err, &vErr):
		httputil.HandleError(c, apperror.Validation(vErr.Error()))
	case errors.Is(err, domain.ErrObjectNotFound):
		httputil.HandleError(c, apperror.NotFound("object"))
	case errors.Is(err, domain.ErrVersionNotFound):
		httputil.HandleError(c, apperror.NotFound("version"))
	case errors.Is(err, domain.ErrForbidden):
		httputil.HandleError(c, apperror.Forbidden("access denied"))
	case errors.Is(err, domain.ErrInvalidCSV):
		httputil.HandleError(c, apperror.BadRequest(err.Error()))
	default:
		_ = c.Error(err)
		httputil.InternalError(c)
	}
}
