package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocumentType_Supported(t *testing.T) {
	for _, dt := range SupportedDocumentTypes {
		parsed, ok := ParseDocumentType(string(dt))
		assert.True(t, ok, "expected %q to parse", dt)
		assert.Equal(t, dt, parsed)
	}
}

func TestParseDocumentType_Unsupported(t *testing.T) {
	for _, raw := range []string{"", "trust", "WILL", "poa", "will "} {
		_, ok := ParseDocumentType(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}
