package handlers

const (
	// Query flags accepted by the catalog listings
	queryLabel = "label"
	queryFlat  = "flat"

	// Request body limits
	maxTextLength = 4096
	maxDSLLength  = 16384
)
