package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsEmptyTemplate checks if an error is an empty template error
func IsEmptyTemplate(err error) bool {
	return GetCode(err) == CodeEmptyTemplate
}

// IsTemplateTooLong checks if an error is a template too long error
func IsTemplateTooLong(err error) bool {
	return GetCode(err) == CodeTemplateTooLong
}

// IsInvalidEncoding checks if an error is an invalid encoding error
func IsInvalidEncoding(err error) bool {
	return GetCode(err) == CodeInvalidEncoding
}

// IsNotSkillTemplate checks if an error is a not skill template error
func IsNotSkillTemplate(err error) bool {
	return GetCode(err) == CodeNotSkillTemplate
}

// IsMalformedTemplate checks if an error is a malformed template error
func IsMalformedTemplate(err error) bool {
	return GetCode(err) == CodeMalformedTemplate
}

// IsNoData checks if an error is a no data error
func IsNoData(err error) bool {
	return GetCode(err) == CodeNoData
}
