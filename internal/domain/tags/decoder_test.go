package tags

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode_NameAndFields(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		wantName   string
		wantFields []string
	}{
		{name: "name with trailing field", text: "Name|anything", wantName: "Name", wantFields: []string{"anything"}},
		{name: "whitespace around name", text: "  Central Park  |x| y ", wantName: "Central Park", wantFields: []string{"x", "y"}},
		{name: "no separator", text: "  Library ", wantName: "Library", wantFields: []string{}},
		{name: "trailing separator", text: "Gym|", wantName: "Gym", wantFields: []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Decode(NewTextRecord("en", tc.text))
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if c.DisplayName != tc.wantName {
				t.Fatalf("DisplayName = %q, want %q", c.DisplayName, tc.wantName)
			}
			if !reflect.DeepEqual(c.Fields, tc.wantFields) {
				t.Fatalf("Fields = %#v, want %#v", c.Fields, tc.wantFields)
			}
		})
	}
}

func TestDecode_CorruptPayload(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
	}{
		{name: "empty text", rec: NewTextRecord("en", "")},
		{name: "whitespace only", rec: NewTextRecord("en", "   \t ")},
		{name: "empty first segment", rec: NewTextRecord("en", " |Park")},
		{name: "no payload", rec: Record{TNF: TNFWellKnown, Type: []byte("T")}},
		{name: "lang length overflows payload", rec: Record{TNF: TNFWellKnown, Type: []byte("T"), Payload: []byte{0x05, 'e', 'n'}}},
		{name: "uri record", rec: Record{TNF: TNFWellKnown, Type: []byte("U"), Payload: []byte{0x04, 'x'}}},
		{name: "media record", rec: Record{TNF: TNFMedia, Type: []byte("text/plain"), Payload: []byte("Park")}},
		{name: "invalid utf8", rec: Record{TNF: TNFWellKnown, Type: []byte("T"), Payload: []byte{0x00, 0xff, 0xfe, 0xfd}}},
		{name: "odd length utf16", rec: Record{TNF: TNFWellKnown, Type: []byte("T"), Payload: []byte{0x80, 0xFE, 0xFF, 0x00, 'H', 0x00}}},
		{name: "unpaired utf16 surrogate", rec: Record{TNF: TNFWellKnown, Type: []byte("T"), Payload: []byte{0x80, 0x00, 'H', 0xD8, 0x00}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.rec)
			if !errors.Is(err, ErrCorruptPayload) {
				t.Fatalf("expected ErrCorruptPayload, got %v", err)
			}
		})
	}
}

func TestWellKnownText_UTF16(t *testing.T) {
	// status: bit 7 (UTF-16) + lang "en"; body: BOM big endian + "Hi"
	payload := []byte{0x82, 'e', 'n', 0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}
	rec := Record{TNF: TNFWellKnown, Type: []byte("T"), Payload: payload}

	text, ok := WellKnownText(rec)
	if !ok {
		t.Fatalf("expected text payload")
	}
	if text != "Hi" {
		t.Fatalf("text = %q, want %q", text, "Hi")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		rec  Record
		want Kind
	}{
		{Record{TNF: TNFEmpty}, KindEmpty},
		{NewTextRecord("en", "x"), KindText},
		{Record{TNF: TNFWellKnown, Type: []byte("U")}, KindURI},
		{Record{TNF: TNFAbsoluteURI}, KindURI},
		{Record{TNF: TNFMedia, Type: []byte("application/json")}, KindMedia},
		{Record{TNF: TNFWellKnown, Type: []byte("Sp")}, KindOther},
		{Record{TNF: TNFExternal, Type: []byte("example.com:t")}, KindExternal},
		{Record{TNF: TNFUnknown}, KindExternal},
		{Record{TNF: TNFUnchanged}, KindExternal},
	}

	for _, tc := range cases {
		if got := KindOf(tc.rec); got != tc.want {
			t.Errorf("KindOf(tnf=%d type=%q) = %s, want %s", tc.rec.TNF, tc.rec.Type, got, tc.want)
		}
	}
}
