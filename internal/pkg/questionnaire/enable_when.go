package questionnaire

import (
	"math"
	"strconv"
	"strings"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
)

// EnableWhenGate decides whether an item guarded by rule is rendered. A nil
// rule and unsupported operators render; a missing or falsy referenced
// answer suppresses.
func EnableWhenGate(values map[string]any, rule *fhir_dto.QuestionnaireEnableWhen) bool {
	if rule == nil {
		return true
	}

	switch rule.Operator {
	case constvars.EnableWhenOperatorEqual,
		constvars.EnableWhenOperatorNotEqual,
		constvars.EnableWhenOperatorGreater,
		constvars.EnableWhenOperatorLess,
		constvars.EnableWhenOperatorGreaterOrEqual,
		constvars.EnableWhenOperatorLessOrEqual:
	default:
		return true
	}

	value, _ := FindNestedValue(values, rule.Question)
	if IsFalsy(value) {
		return false
	}

	switch rule.Operator {
	case constvars.EnableWhenOperatorEqual:
		return equalsAnswerString(value, rule.AnswerString)
	case constvars.EnableWhenOperatorNotEqual:
		return !equalsAnswerString(value, rule.AnswerString)
	}

	n, ok := ParseLeadingInt(value)
	if !ok || rule.AnswerInteger == nil {
		return false
	}
	expected := *rule.AnswerInteger

	switch rule.Operator {
	case constvars.EnableWhenOperatorGreater:
		return n > expected
	case constvars.EnableWhenOperatorLess:
		return n < expected
	case constvars.EnableWhenOperatorGreaterOrEqual:
		return n >= expected
	default:
		return n <= expected
	}
}

func equalsAnswerString(value any, answer *string) bool {
	s, ok := value.(string)
	return ok && answer != nil && s == *answer
}

// ParseLeadingInt reads an integer the way form inputs are usually coerced.
// Leading whitespace and a sign are accepted, a 0x prefix switches to hex,
// parsing stops at the first non-digit and floats are truncated.
func ParseLeadingInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float32:
		return truncate(float64(v))
	case float64:
		return truncate(v)
	case string:
		return parseIntPrefix(v)
	}
	return 0, false
}

func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit, s = 16, isHexDigit, s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
