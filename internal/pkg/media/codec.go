// Package media serializes a project's media payload to and from the single
// text column it lives in. Decode is total: whatever is stored, callers get a
// usable value back.
package media

import (
	"bytes"

	"github.com/bytedance/sonic"
	"github.com/sanzad/sanzad-backend/internal/domain"
)

func empty() domain.Media {
	return domain.Media{Items: []domain.MediaItem{}}
}

// Decode parses the stored column text into the media variant. NULL, empty
// and malformed text all degrade to an empty attachment list; a JSON array
// decodes to the attachment-list case and a JSON object to the geometry
// bundle. Decode never fails.
func Decode(raw []byte) domain.Media {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return empty()
	}

	switch trimmed[0] {
	case '[':
		var items []domain.MediaItem
		if err := sonic.Unmarshal(trimmed, &items); err != nil || items == nil {
			return empty()
		}
		return domain.Media{Items: items}
	case '{':
		bundle := new(domain.GeometryBundle)
		if err := sonic.Unmarshal(trimmed, bundle); err != nil {
			return empty()
		}
		bundle.Normalize()
		return domain.Media{Bundle: bundle}
	default:
		return empty()
	}
}

// DecodeString is Decode over a nullable column value.
func DecodeString(raw *string) domain.Media {
	if raw == nil {
		return empty()
	}
	return Decode([]byte(*raw))
}

// Encode serializes the media value for storage. The empty attachment list
// encodes as []. Values are caller-constructed, so encoding is expected to
// succeed.
func Encode(m domain.Media) ([]byte, error) {
	return sonic.Marshal(m)
}
