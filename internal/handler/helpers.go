package handler

import (
	"net/http"
	"reflect"
	"strings"

	"distribuidora/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// required, gt=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewEnvelope("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var faltas []string
		for _, fe := range err.(validator.ValidationErrors) {
			faltas = append(faltas, "'"+strings.ToLower(fe.Field())+"' ("+fe.Tag()+")")
		}
		c.JSON(http.StatusBadRequest, apierror.NewEnvelope("Error de validación en: "+strings.Join(faltas, ", ")))
		return false
	}
	return true
}

// parseID extracts the named UUID path param, answering 400 on a malformed
// value. Callers should return immediately when ok is false.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewEnvelope("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps classified service errors to 400/404 with the canonical
// envelope; anything unclassified is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	if kind, ok := apierror.KindOf(err); ok {
		status := http.StatusBadRequest
		if kind == apierror.KindNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.NewEnvelope(err.Error()))
		return
	}
	log.Error().
		Str("request_id", c.GetString("request_id")).
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, apierror.NewEnvelope("Error interno del servidor"))
}
