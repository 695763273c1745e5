package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// testParams keep Argon2id cheap; the layout is identical to production.
var testParams = Argon2Params{Time: 1, Memory: 1024, Threads: 1}

func TestNoteCipher_RoundTrip(t *testing.T) {
	c := NewNoteCipherWithParams(testParams)

	contents := []string{
		"c",
		"",
		"multi\nline\tcontent",
		`{"json":"inside"}`,
		"zażółć gęślą jaźń 🐈",
		strings.Repeat("long ", 2000),
	}

	for _, content := range contents {
		blob, err := c.Encrypt(content, "Abcdef123!")
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if content != "" && strings.Contains(blob, content) {
			t.Fatalf("ciphertext leaks plaintext")
		}

		got, err := c.Decrypt(blob, "Abcdef123!")
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != content {
			t.Fatalf("Decrypt = %q, want %q", got, content)
		}
	}
}

func TestNoteCipher_FreshSaltAndNonce(t *testing.T) {
	c := NewNoteCipherWithParams(testParams)
	b1, _ := c.Encrypt("same", "Abcdef123!")
	b2, _ := c.Encrypt("same", "Abcdef123!")
	if b1 == b2 {
		t.Fatal("two encryptions of the same content must differ")
	}
}

func TestNoteCipher_WrongPassphrase(t *testing.T) {
	c := NewNoteCipherWithParams(testParams)

	for _, content := range []string{"c", "", "secret diary entry"} {
		blob, err := c.Encrypt(content, "Abcdef123!")
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}

		got, err := c.Decrypt(blob, "Abcdef123?")
		if !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("err = %v, want ErrDecryptionFailed", err)
		}
		if got != "" {
			t.Fatalf("wrong passphrase returned %q", got)
		}
	}
}

func TestNoteCipher_CorruptedBlobs(t *testing.T) {
	c := NewNoteCipherWithParams(testParams)
	blob, err := c.Encrypt("content", "Abcdef123!")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(blob)

	flipped := append([]byte(nil), raw...)
	flipped[len(flipped)-1] ^= 0xFF

	badVersion := append([]byte(nil), raw...)
	badVersion[0] = 9

	cases := map[string]string{
		"not base64":  "%%%",
		"empty":       "",
		"too short":   base64.StdEncoding.EncodeToString(raw[:20]),
		"flipped tag": base64.StdEncoding.EncodeToString(flipped),
		"bad version": base64.StdEncoding.EncodeToString(badVersion),
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := c.Decrypt(input, "Abcdef123!"); !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("err = %v, want ErrDecryptionFailed", err)
			}
		})
	}
}

func TestNoteCipher_EmptyPassphrase(t *testing.T) {
	c := NewNoteCipherWithParams(testParams)
	if _, err := c.Encrypt("c", ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("Encrypt err = %v, want ErrEmptyPassphrase", err)
	}
	if _, err := c.Decrypt("AAAA", ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("Decrypt err = %v, want ErrEmptyPassphrase", err)
	}
}

func TestNoteCipher_ParamsMustMatch(t *testing.T) {
	blob, err := NewNoteCipherWithParams(testParams).Encrypt("c", "Abcdef123!")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	other := NewNoteCipherWithParams(Argon2Params{Time: 2, Memory: 1024, Threads: 1})
	if _, err := other.Decrypt(blob, "Abcdef123!"); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("err = %v, want ErrDecryptionFailed", err)
	}
}
