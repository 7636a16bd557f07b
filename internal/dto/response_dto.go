package dto

import "github.com/nkritika/prepforge/internal/apperr"

type ErrorResponse struct {
	Error string                  `json:"error"`
	Code  string                  `json:"code,omitempty"`
	Items []apperr.BatchItemError `json:"items,omitempty"`
}
