package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify_AuthenticSignature(t *testing.T) {
	v := NewVerifier("test-secret")
	sig := sign("test-secret", "order_abc", "pay_xyz")

	assert.True(t, v.Verify("order_abc", "pay_xyz", sig))
}

func TestVerify_SingleCharacterMutationFails(t *testing.T) {
	v := NewVerifier("test-secret")
	sig := sign("test-secret", "order_abc", "pay_xyz")

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.False(t, v.Verify("order_abc", "pay_xyz", string(mutated)),
			"mutation at index %d should fail", i)
	}
}

func TestVerify_WrongSecretFails(t *testing.T) {
	v := NewVerifier("other-secret")
	sig := sign("test-secret", "order_abc", "pay_xyz")

	assert.False(t, v.Verify("order_abc", "pay_xyz", sig))
}

func TestVerify_MissingFieldsFailWithoutPanic(t *testing.T) {
	v := NewVerifier("test-secret")

	assert.False(t, v.Verify("", "pay_xyz", "deadbeef"))
	assert.False(t, v.Verify("order_abc", "", "deadbeef"))
	assert.False(t, v.Verify("order_abc", "pay_xyz", ""))
}
