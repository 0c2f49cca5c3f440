package shared

import (
	"github.com/google/uuid"
)

// ParseID converts the external string form of an identifier into its
// native type. Returns ErrInvalidIdentifier when the input does not
// parse (wrong length or character set).
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidIdentifier
	}
	return id, nil
}

// FormatID converts a native identifier to its external string form.
func FormatID(id uuid.UUID) string {
	return id.String()
}

// SanitizeDocument rewrites every identifier-typed value in a document
// to its string form, recursing into nested documents. The input map is
// modified in place and returned. Idempotent: string values pass
// through untouched.
func SanitizeDocument(doc map[string]any) map[string]any {
	for key, value := range doc {
		switch v := value.(type) {
		case uuid.UUID:
			doc[key] = v.String()
		case *uuid.UUID:
			if v != nil {
				doc[key] = v.String()
			}
		case map[string]any:
			doc[key] = SanitizeDocument(v)
		}
	}
	return doc
}
