package api

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
)

// sonicSerializer plugs sonic in as the echo JSON codec.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	return enc.Encode(i)
}

func (sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := sonic.ConfigDefault.NewDecoder(c.Request().Body)
	if err := dec.Decode(i); err != nil {
		if err == io.EOF {
			return constants.ErrEmptyBody
		}
		return constants.NewValidationError("malformed request body")
	}
	return nil
}

type binder struct {
	def echo.DefaultBinder
}

func NewBinder() *binder {
	return &binder{}
}

// Bind decodes JSON bodies through sonic and falls back to the default binder
// for path and query params.
func (b *binder) Bind(i interface{}, c echo.Context) error {
	if err := b.def.BindPathParams(c, i); err != nil {
		return err
	}
	if err := b.def.BindQueryParams(c, i); err != nil {
		return err
	}

	req := c.Request()
	if req.ContentLength == 0 || req.Method == http.MethodGet || req.Method == http.MethodDelete {
		return nil
	}
	return sonicSerializer{}.Deserialize(c, i)
}
