package main

import (
	"bytes"
	"testing"
)

func TestIsBinaryData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("hello world\n"), false},
		{"tabs and carriage returns", []byte("a\tb\r\nc"), false},
		{"nul byte", []byte("abc\x00def"), true},
		{"control byte", []byte{0x01, 'a', 'b'}, true},
		{"escape byte", []byte("text\x1b[0m"), true},
		{"high bytes are fine", []byte{0xc3, 0xa9}, false},
		{"nul beyond sniff window ignored", append(bytes.Repeat([]byte("a"), binarySniffLen), 0x00), false},
		{"nul inside sniff window", append([]byte{0x00}, bytes.Repeat([]byte("a"), binarySniffLen)...), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isBinaryData(tc.data); got != tc.want {
				t.Errorf("isBinaryData = %v, want %v", got, tc.want)
			}
		})
	}
}
