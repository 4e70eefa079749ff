// Package gin provides adapters for using json-errors with the Gin framework.
package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jsonerrors "github.com/blackwell-systems/json-errors"
)

// Trace wires the trace ID middleware into Gin's middleware chain.
//
// The ID is available via jsonerrors.TraceIDFromRequest(c.Request) and is
// echoed in the X-Request-Id response header.
//
// Example:
//
//	r := gin.Default()
//	r.Use(Trace())
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		handler := jsonerrors.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Write sends err as a JSON error response.
//
// Example:
//
//	r.POST("/users", func(c *gin.Context) {
//	    if err := repo.Create(c, u); err != nil {
//	        Write(c, storage.Classify(err))
//	        return
//	    }
//	    c.Status(http.StatusCreated)
//	})
func Write(c *gin.Context, err error) {
	jsonerrors.Write(c.Writer, c.Request, err)
}

// Abort writes err like Write and stops the remaining handlers. The error
// is also recorded in c.Errors for logging middleware.
func Abort(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.Abort()
	Write(c, err)
}
