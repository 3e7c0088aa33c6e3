package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	specJSON []byte
	specErr  error
)

// GetSwagger loads and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

func swaggerJSON() ([]byte, error) {
	specOnce.Do(func() {
		var doc *openapi3.T
		doc, specErr = GetSwagger()
		if specErr != nil {
			return
		}
		specJSON, specErr = doc.MarshalJSON()
	})
	return specJSON, specErr
}

// swaggerDoc feeds the document to the swag registry the Swagger UI reads from.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	raw, err := swaggerJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// RegisterDocs serves the API document at /openapi.json and the Swagger UI
// under /swagger/. It fails if the embedded document does not validate.
func RegisterDocs(e *echo.Echo) error {
	raw, err := swaggerJSON()
	if err != nil {
		return err
	}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, swaggerDoc{})
	}

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
