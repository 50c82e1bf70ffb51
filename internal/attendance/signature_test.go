package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	payload := []byte(`{"contextId":"42","matches":[{"id":"alice","dist":0.3}]}`)

	signature := Sign("my-secret-key", payload)
	assert.NotEmpty(t, signature)
	assert.Contains(t, signature, "sha256=")

	assert.True(t, Verify("my-secret-key", payload, signature))
}

func TestVerify(t *testing.T) {
	secret := "test-secret"
	payload := []byte(`{"contextId":"42"}`)
	validSignature := Sign(secret, payload)

	tests := []struct {
		name      string
		secret    string
		payload   []byte
		signature string
		expected  bool
	}{
		{
			name:      "valid signature",
			secret:    secret,
			payload:   payload,
			signature: validSignature,
			expected:  true,
		},
		{
			name:      "invalid signature",
			secret:    secret,
			payload:   payload,
			signature: "sha256=invalid",
			expected:  false,
		},
		{
			name:      "wrong secret",
			secret:    "wrong-secret",
			payload:   payload,
			signature: validSignature,
			expected:  false,
		},
		{
			name:      "modified payload",
			secret:    secret,
			payload:   []byte(`{"contextId":"43"}`),
			signature: validSignature,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Verify(tt.secret, tt.payload, tt.signature)
			assert.Equal(t, tt.expected, result)
		})
	}
}
