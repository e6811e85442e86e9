package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureIsDeterministic(t *testing.T) {
	first := Signature("secret", "order_abc", "pay_xyz")
	second := Signature("secret", "order_abc", "pay_xyz")

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestVerifySignatureAcceptsMatching(t *testing.T) {
	sig := Signature("secret", "order_abc", "pay_xyz")

	assert.True(t, VerifySignature("secret", "order_abc", "pay_xyz", sig))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	sig := Signature("secret", "order_abc", "pay_xyz")

	// Flip a single character.
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	assert.False(t, VerifySignature("secret", "order_abc", "pay_xyz", string(tampered)))
	assert.False(t, VerifySignature("secret", "order_abc", "pay_other", sig))
	assert.False(t, VerifySignature("other-secret", "order_abc", "pay_xyz", sig))
	assert.False(t, VerifySignature("secret", "order_abc", "pay_xyz", ""))
}
