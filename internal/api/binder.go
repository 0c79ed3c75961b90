package api

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic; everything else falls through to
// Echo's default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return constants.ErrInvalidJSONBody
			}
			if len(bytes.TrimSpace(body)) == 0 {
				return nil
			}
			if err := sonic.Unmarshal(body, i); err != nil {
				return constants.ErrInvalidJSONBody
			}
			return nil
		}
	}

	return b.fallback.Bind(i, c)
}
