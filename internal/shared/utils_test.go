package shared

import "testing"

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("correct horse battery staple")
	WipeByteArray(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not wiped: %v", i, b)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
