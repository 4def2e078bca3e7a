package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/admin-nexus/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// fieldValidator 按模型上的 validate 标签校验，错误字段名取 json 标签
var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// 金额按数值参与 gte 等比较
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(models.Money); ok {
			amount, _ := m.Float64()
			return amount
		}
		return nil
	}, models.Money{})
	return v
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// validateStruct 执行标签校验，首个失败字段转换为 ErrInvalidInput
func validateStruct(target interface{}) error {
	err := fieldValidator.Struct(target)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return invalidf("%s", describeFieldError(fieldErrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// validateOneOf 校验单个取值是否在允许集合内
func validateOneOf(value string, allowed []string) error {
	return fieldValidator.Var(value, "required,oneof="+strings.Join(allowed, " "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " is not a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		if fe.Param() == "0" {
			return field + " must not be negative"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
