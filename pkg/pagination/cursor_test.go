package pagination

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursorEncodeDecode(t *testing.T) {
	cursor := &Cursor{
		ID: uuid.New(),
		At: time.Now().UTC().Round(time.Second),
	}

	decoded, err := DecodeCursor(cursor.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded == nil {
		t.Fatalf("decoded cursor is nil")
	}
	if decoded.ID != cursor.ID || !decoded.At.Equal(cursor.At) {
		t.Fatalf("decoded cursor mismatch: %+v", decoded)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	for _, in := range []string{"bad!=base64", "bm90LWpzb24="} {
		if _, err := DecodeCursor(in); !errors.Is(err, ErrInvalidCursor) {
			t.Fatalf("DecodeCursor(%q) error = %v, want ErrInvalidCursor", in, err)
		}
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	cursor, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor, got %+v", cursor)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, DefaultLimit},
		{MaxLimit + 1, MaxLimit},
		{50, 50},
	}

	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTrim(t *testing.T) {
	items := []int{1, 2, 3, 4}

	page, more := Trim(items, 3)
	if !more || len(page) != 3 {
		t.Fatalf("Trim(4 items, 3) = %v, %v", page, more)
	}

	page, more = Trim(items, 4)
	if more || len(page) != 4 {
		t.Fatalf("Trim(4 items, 4) = %v, %v", page, more)
	}
}
