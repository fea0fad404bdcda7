// Package validate 是唯一的校验模块：字段级约束用validator标签表达，
// 跨记录的业务规则是纯函数。单条创建和批量导入走同一套入口，
// 避免两条路径各自维护一份规则。
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// 错误里报json字段名而不是Go字段名
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// FieldErrors 对类型化行执行字段级校验，返回带行号的错误列表。
// raw用于回填出错字段的原始值，直接创建场景可传nil。
func FieldErrors(row any, n int, raw tabular.Row) []tabular.RowError {
	err := v.Struct(row)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []tabular.RowError{{Row: n, Message: err.Error()}}
	}

	out := make([]tabular.RowError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		out = append(out, tabular.RowError{
			Row:        n,
			Field:      field,
			Value:      raw.Get(field),
			Message:    fieldMessage(fe),
			Suggestion: fieldSuggestion(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("invalid value for %s", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func fieldSuggestion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		opts := strings.Join(strings.Fields(fe.Param()), ", ")
		return "Valid options are: " + opts
	case "required":
		return fmt.Sprintf("Provide a value for %s", fe.Field())
	case "gt", "gte", "lte", "max":
		return fmt.Sprintf("Use a value satisfying %s %s", fe.Tag(), fe.Param())
	default:
		return ""
	}
}

// schemaError 类型转换失败时的行错误
func schemaError(n int, field, value, message, suggestion string) tabular.RowError {
	return tabular.RowError{Row: n, Field: field, Value: value, Message: message, Suggestion: suggestion}
}
