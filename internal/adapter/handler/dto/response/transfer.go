package response

import "github.com/marcos-nsantos/geobounds-service/internal/usecase/transfer"

type ExportResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	SignedURL string `json:"signed_url,omitempty"`
	Rows      int    `json:"rows"`
}

type RowErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResponse struct {
	Imported    int                `json:"imported"`
	EmptyBounds int                `json:"empty_bounds"`
	Rejected    []RowErrorResponse `json:"rejected"`
}

func ExportResultToResponse(r *transfer.ExportResult) ExportResponse {
	return ExportResponse{
		Key:       r.Key,
		URL:       r.URL,
		SignedURL: r.SignedURL,
		Rows:      r.Rows,
	}
}

func ImportResultToResponse(r *transfer.ImportResult) ImportResponse {
	resp := ImportResponse{
		Imported:    r.Imported,
		EmptyBounds: r.EmptyBounds,
		Rejected:    make([]RowErrorResponse, 0, len(r.Rejected)),
	}
	for _, e := range r.Rejected {
		resp.Rejected = append(resp.Rejected, RowErrorResponse{Line: e.Line, Message: e.Message})
	}
	return resp
}
