package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type scopeKind int

const (
	scopeAny scopeKind = iota
	scopeCategory
	scopeNone
)

// Scope is the category restriction of a quiz session.
// The zero value is AnyCategory.
type Scope struct {
	kind       scopeKind
	categoryID int64
}

// AnyCategory draws from every category.
func AnyCategory() Scope {
	return Scope{kind: scopeAny}
}

// ForCategory restricts the quiz to a single category. Non-positive IDs
// cannot name a category and yield NoEligibleCategory.
func ForCategory(id int64) Scope {
	if id <= 0 {
		return NoEligibleCategory()
	}
	return Scope{kind: scopeCategory, categoryID: id}
}

// NoEligibleCategory is the scope of a malformed category reference: it
// matches no question at all.
func NoEligibleCategory() Scope {
	return Scope{kind: scopeNone}
}

// IsAny reports whether the scope is unrestricted.
func (s Scope) IsAny() bool {
	return s.kind == scopeAny
}

// IsNone reports whether the scope can never match a question.
func (s Scope) IsNone() bool {
	return s.kind == scopeNone
}

// CategoryID returns the restricted category and true, or 0 and false for
// the other scopes.
func (s Scope) CategoryID() (int64, bool) {
	if s.kind != scopeCategory {
		return 0, false
	}
	return s.categoryID, true
}

// String renders the scope for logs.
func (s Scope) String() string {
	switch s.kind {
	case scopeCategory:
		return fmt.Sprintf("category:%d", s.categoryID)
	case scopeNone:
		return "none"
	default:
		return "any"
	}
}

// ParseScope normalises the quiz_category value of a quiz request.
//
// null, 0 and {"id": 0} mean any category. A positive number, {"id": n} or
// {"id": "n"} select that category. Everything else is NoEligibleCategory;
// a malformed scope is never an error.
func ParseScope(raw json.RawMessage) Scope {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return AnyCategory()
	}

	if raw[0] == '{' {
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil || len(obj.ID) == 0 {
			return NoEligibleCategory()
		}
		return scopeFromID(obj.ID)
	}

	return scopeFromID(raw)
}

func scopeFromID(raw json.RawMessage) Scope {
	var id int64

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		parsed, err := num.Int64()
		if err != nil {
			return NoEligibleCategory()
		}
		id = parsed
	} else {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return NoEligibleCategory()
		}
		parsed, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return NoEligibleCategory()
		}
		id = parsed
	}

	if id == 0 {
		return AnyCategory()
	}
	return ForCategory(id)
}
