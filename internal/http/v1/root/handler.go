// Package root serves the service's only resource, GET /.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/emptycheck-api/internal/platform/logging"
)

// probeValue is the fixed input handed to the emptiness check.
const probeValue = "abc"

// EmptinessCheck reports whether value has zero length.
type EmptinessCheck func(value string) bool

// Register wires GET / into api. It panics if check is nil.
func Register(api huma.API, check EmptinessCheck) {
	if check == nil {
		panic("root.Register: nil EmptinessCheck")
	}
	h := &handler{check: check}
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Report whether the probe value is empty",
	}, h.get)
}

type handler struct {
	check EmptinessCheck
}

func (h *handler) get(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	empty := h.check(probeValue)
	applog.LogInfo(ctx, "root get", zap.String("path", "/"), zap.Bool("empty", empty))
	return &GetOutput{Body: Data{Message: empty}}, nil
}
