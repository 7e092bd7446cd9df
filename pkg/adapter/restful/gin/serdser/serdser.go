// Package serdser contains the common serialization and
// deserialization helpers of the REST resources.
package serdser

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/jamon-locator/pkg/core/cerr"
)

// Bind binds the request to req using the b binding and validates it.
// Validation errors are reported as a 400 response which maps the
// lowercased field names to their error messages. Bind returns true
// if req could be bound without errors.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return report(c, c.ShouldBindWith(req, b))
}

// BindUri binds the path parameters of the request to req like Bind.
func BindUri(c *gin.Context, req any) bool {
	return report(c, c.ShouldBindUri(req))
}

func report(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			name := strings.ToLower(ferr.Field())
			AddErr(&nameToErrs, name, ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr writes err as a JSON response with a detail field. The status
// code is taken from a wrapped *cerr.Error, defaulting to 500.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
