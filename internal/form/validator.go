package form

import (
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidateStruct runs ozzo validation rules and converts the result into a
// single InvalidArgument status error.
func ValidateStruct(structField interface{}, rules ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structField, rules...)
	if err == nil {
		return nil
	}

	var msgs []string
	if ve, ok := err.(validation.Errors); ok {
		for field, ferr := range ve {
			msgs = append(msgs, field+": "+formatErrMsg(ferr.Error()))
		}
	} else {
		msgs = append(msgs, formatErrMsg(err.Error()))
	}

	return status.Error(codes.InvalidArgument, strings.Join(msgs, " "))
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}
