// Package handler is the HTTP layer.
//
// Handlers bind and validate requests through the typed pipeline in base.go,
// call the service layer and shape the response.
package handler
