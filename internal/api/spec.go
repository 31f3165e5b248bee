package api

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadSpec parses and validates the embedded v1 OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}

	spec, err := loader.LoadFromData(v1Spec)
	if err != nil {
		return nil, fmt.Errorf("could not load v1 spec: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid v1 spec: %w", err)
	}

	return spec, nil
}

// SpecRoutes lists the operations of spec as ServeMux patterns such as
// "GET /v1/profiles/{id}", prefixed with the first server URL.
func SpecRoutes(spec *openapi3.T) []string {
	prefix := ""
	if len(spec.Servers) > 0 {
		prefix = strings.TrimSuffix(spec.Servers[0].URL, "/")
	}

	var routes []string
	for path, item := range spec.Paths.Map() {
		for method := range item.Operations() {
			routes = append(routes, strings.ToUpper(method)+" "+prefix+path)
		}
	}
	slices.Sort(routes)

	return routes
}
