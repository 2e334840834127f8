package api

import "net/http"

// RegisterRoutes attaches all endpoints to the mux.
func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /", handler.HandleHealth)
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /ocr", handler.HandleOCR)
}
