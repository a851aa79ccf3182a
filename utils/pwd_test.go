package utils

import "testing"

// TestHashPassword tests digest shape and determinism.
func TestHashPassword(t *testing.T) {
	first := HashPassword("toto1234!")
	second := HashPassword("toto1234!")
	if first != second {
		t.Fatalf("digest not deterministic: %s vs %s", first, second)
	}
	if len(first) != 40 {
		t.Fatalf("expect 40 hex chars, got %d", len(first))
	}
	if HashPassword("other") == first {
		t.Fatal("different passwords should not collide")
	}
}

// TestCheckPassword tests verification outcomes.
func TestCheckPassword(t *testing.T) {
	digest := HashPassword("correct_pwd")

	if !CheckPassword("correct_pwd", digest) {
		t.Fatal("CheckPassword should accept the right password")
	}
	if CheckPassword("wrong_pwd", digest) {
		t.Fatal("CheckPassword should reject a wrong password")
	}
	if CheckPassword("correct_pwd", "") {
		t.Fatal("CheckPassword should reject an empty digest")
	}
}

// TestContentTypeFor tests extension mapping.
func TestContentTypeFor(t *testing.T) {
	cases := []struct {
		filename string
		expected string
	}{
		{"photo.PNG", "image/png"},
		{"photo.jpeg", "image/jpeg"},
		{"notes.txt", "text/plain; charset=utf-8"},
		{"archive.zip", "application/zip"},
		{"mystery", "application/octet-stream"},
	}
	for _, tc := range cases {
		got := ContentTypeFor(tc.filename)
		if got != tc.expected {
			t.Fatalf("ContentTypeFor(%s): expect %s, got %s", tc.filename, tc.expected, got)
		}
	}
}
