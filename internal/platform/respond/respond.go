// Package respond renders RFC 9457 problem details for requests that never
// reach a huma operation: unmatched routes, unsupported methods and panics.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	applog "github.com/janisto/emptycheck-api/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound         = "resource not found"
	msgInternalServer   = "internal server error"
	msgMethodNotAllowed = "method %s not allowed"
)

// NotFoundHandler answers unmatched paths with a 404 problem.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler answers a known path with an unsupported method.
// The Allow header lists the methods the router does serve for the path.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(msgMethodNotAllowed, r.Method))
	}
}

// Recoverer turns handler panics into 500 problems. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.String("stack", string(debug.Stack())),
				)
				// Headers are already on the wire; nothing sensible can be written.
				if ww.Status() != 0 {
					return
				}
				writeProblem(ww, r, http.StatusInternalServerError, msgInternalServer)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	model := &huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	contentType := contentTypeProblemJSON
	var body []byte
	var err error
	if prefersCBOR(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		body, err = cbor.Marshal(model)
	} else {
		body, err = marshalJSON(model)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err, zap.Int("status", status))
		http.Error(w, detail, status)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogWarn(r.Context(), "failed to write problem", zap.Error(err), zap.Int("status", status))
	}
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// prefersCBOR reports whether the Accept header ranks CBOR strictly above JSON.
// Wildcards count toward both; JSON wins ties.
func prefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	var cborQ, jsonQ float64
	for part := range strings.SplitSeq(accept, ",") {
		mediaType, q, ok := parseMediaRange(part)
		if !ok {
			continue
		}
		switch mediaType {
		case "application/cbor", "application/problem+cbor", "application/*+cbor":
			cborQ = max(cborQ, q)
		case "application/json", "application/problem+json", "application/*+json":
			jsonQ = max(jsonQ, q)
		case "*/*", "application/*":
			cborQ = max(cborQ, q)
			jsonQ = max(jsonQ, q)
		}
	}
	return cborQ > 0 && cborQ > jsonQ
}

func parseMediaRange(part string) (string, float64, bool) {
	params := strings.Split(part, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	if mediaType == "" || !strings.Contains(mediaType, "/") {
		return "", 0, false
	}
	q := 1.0
	for _, p := range params[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(p), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return "", 0, false
		}
		q = parsed
	}
	return mediaType, q, true
}

// allowedMethods asks chi's routing tree which methods match the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
		if routePath == "" {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		match := rctx.Routes.Match(chi.NewRouteContext(), method, routePath)
		// HEAD is served by the GET handler through chi's GetHead middleware.
		if !match && method == http.MethodHead {
			match = rctx.Routes.Match(chi.NewRouteContext(), http.MethodGet, routePath)
		}
		if match {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
