package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
)

func newTestBox(t *testing.T) *Box {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	box, err := NewBox(key)
	require.NoError(t, err)
	return box
}

func TestBox_RoundTrip(t *testing.T) {
	box := newTestBox(t)

	for _, plaintext := range []string{"hello", "", "héllo wörld ünïcode 🙂", "a longer message body with\nnewlines and spaces"} {
		env, err := box.Seal([]byte(plaintext))
		require.NoError(t, err)

		got, err := box.Open(env)
		require.NoError(t, err)
		assert.Equal(t, plaintext, string(got))
	}
}

func TestBox_NonceFreshPerSeal(t *testing.T) {
	box := newTestBox(t)

	first, err := box.Seal([]byte("same message"))
	require.NoError(t, err)
	second, err := box.Seal([]byte("same message"))
	require.NoError(t, err)

	assert.NotEqual(t, first.IV, second.IV)
	assert.NotEqual(t, first.Ciphertext, second.Ciphertext)
}

func TestBox_TamperedTagFails(t *testing.T) {
	box := newTestBox(t)

	env, err := box.Seal([]byte("integrity matters"))
	require.NoError(t, err)

	tag, err := hex.DecodeString(env.Tag)
	require.NoError(t, err)
	tag[0] ^= 0x01
	env.Tag = hex.EncodeToString(tag)

	_, err = box.Open(env)
	assert.ErrorIs(t, err, errors.ErrDecryptionFail)
}

func TestBox_TamperedCiphertextFails(t *testing.T) {
	box := newTestBox(t)

	env, err := box.Seal([]byte("integrity matters"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x80
	env.Ciphertext = base64.StdEncoding.EncodeToString(raw)

	_, err = box.Open(env)
	assert.ErrorIs(t, err, errors.ErrDecryptionFail)
}

func TestBox_MalformedInputFails(t *testing.T) {
	box := newTestBox(t)

	cases := []Envelope{
		{Ciphertext: "not-base64!!!", IV: "000000000000000000000000", Tag: "00000000000000000000000000000000"},
		{Ciphertext: "", IV: "zz", Tag: ""},
		{Ciphertext: base64.StdEncoding.EncodeToString([]byte("x")), IV: "00", Tag: "00000000000000000000000000000000"},
		{},
	}
	for _, env := range cases {
		_, err := box.Open(env)
		assert.ErrorIs(t, err, errors.ErrDecryptionFail)
	}
}

func TestBox_WrongKeyFails(t *testing.T) {
	box := newTestBox(t)
	other := newTestBox(t)

	env, err := box.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = other.Open(env)
	assert.ErrorIs(t, err, errors.ErrDecryptionFail)
}

func TestNewBox_RejectsBadKeySize(t *testing.T) {
	_, err := NewBox(make([]byte, 16))
	assert.Error(t, err)
}
