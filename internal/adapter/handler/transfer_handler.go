package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/geobounds-service/internal/pkg/httputil"
)

const maxImportSize = 5 << 20 // 5MB

type TransferHandler struct {
	transferSvc TransferService
}

func NewTransferHandler(transferSvc TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

func (h *TransferHandler) Download(c *gin.Context) {
	data, _, err := h.transferSvc.WriteCSV(c.Request.Context(), httputil.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.CSV(c, "objects.csv", data)
}

func (h *TransferHandler) Export(c *gin.Context) {
	result, err := h.transferSvc.Export(c.Request.Context(), httputil.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.Created(c, response.ExportResultToResponse(result))
}

// Import accepts either a multipart "file" field or a raw text/csv body.
func (h *TransferHandler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, _, err := c.Request.FormFile("file")
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			respondError(c, err)
			return
		}
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
			return
		}
		defer file.Close()
		body = file
	}

	result, err := h.transferSvc.Import(c.Request.Context(), httputil.GetUserID(c), body)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ImportResultToResponse(result))
}
