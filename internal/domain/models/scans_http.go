package models

// Requests for the scan HTTP endpoints. Defined in domain for consistency and reuse.

type ScanRowRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,min=1,max=10"`
}
