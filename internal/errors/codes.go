package errors

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// Codec error codes. These form the closed set callers branch on when a
// template or share-link decode fails; message text is informational only.
const (
	CodeEmptyTemplate     Code = "EMPTY_TEMPLATE"
	CodeTemplateTooLong   Code = "TEMPLATE_TOO_LONG"
	CodeInvalidEncoding   Code = "INVALID_ENCODING"
	CodeNotSkillTemplate  Code = "NOT_SKILL_TEMPLATE"
	CodeMalformedTemplate Code = "MALFORMED_TEMPLATE"
	CodeNoData            Code = "NO_DATA"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
