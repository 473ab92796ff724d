package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/emptycheck-api/internal/http/v1/root"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, check root.EmptinessCheck) {
	root.Register(api, check)
}
