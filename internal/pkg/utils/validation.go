package utils

import (
	"outcomes-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("birth_date", validateBirthDate)
	validate.RegisterValidation("sink_name", validateSinkName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateBirthDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	birthDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	return !birthDate.After(time.Now())
}

func validateSinkName(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.SinkWebhook, constvars.SinkRabbitMQ, constvars.SinkMongo, constvars.SinkMinio:
		return true
	default:
		return false
	}
}
