// Package swagger serves the OpenAPI document of the employee directory
// together with a Swagger UI page that renders it.
package swagger

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed swagger-ui/index.html swagger-ui/openapi.yaml
var content embed.FS

// GetHandler returns a file server rooted at the embedded swagger-ui directory.
func GetHandler() (http.Handler, error) {
	subFS, err := fs.Sub(content, "swagger-ui")
	if err != nil {
		return nil, err
	}

	return http.FileServer(http.FS(subFS)), nil
}

