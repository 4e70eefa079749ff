// Package echo provides adapters for using json-errors with the Echo framework.
package echo

import (
	"errors"
	"fmt"
	"net/http"

	echofw "github.com/labstack/echo/v4"

	jsonerrors "github.com/blackwell-systems/json-errors"
)

// Trace adapts the trace ID middleware to Echo's middleware interface.
//
// Example:
//
//	e := echo.New()
//	e.Use(Trace)
func Trace(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		var err error
		handler := jsonerrors.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.SetRequest(r)
			err = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return err
	}
}

// Write sends err as a JSON error response. It always returns nil so it
// can end a handler.
//
// Example:
//
//	e.GET("/users/:id", func(c echo.Context) error {
//	    u, err := repo.Get(c.Request().Context(), c.Param("id"))
//	    if err != nil {
//	        return Write(c, storage.Classify(err))
//	    }
//	    return c.JSON(http.StatusOK, u)
//	})
func Write(c echofw.Context, err error) error {
	jsonerrors.Write(c.Response(), c.Request(), err)
	return nil
}

// ErrorHandler renders errors returned from handlers as JSON errors.
// Echo's own HTTP errors keep their status and message.
//
// Example:
//
//	e := echo.New()
//	e.HTTPErrorHandler = ErrorHandler
func ErrorHandler(err error, c echofw.Context) {
	if c.Response().Committed {
		return
	}
	var he *echofw.HTTPError
	if errors.As(err, &he) {
		err = jsonerrors.FromStatus(he.Code, fmt.Sprint(he.Message)).WithCause(err)
	}
	jsonerrors.Write(c.Response(), c.Request(), err)
}
