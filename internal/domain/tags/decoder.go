package tags

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const fieldSeparator = "|"

var (
	ErrCorruptPayload  = errors.New("corrupt tag payload")
	ErrUnsupportedKind = errors.New("unsupported tag record kind")
)

// Candidate es el resultado del decode de un tag.
// Fields guarda los segmentos posteriores al nombre (reservados, hoy no se interpretan).
type Candidate struct {
	DisplayName string
	Fields      []string
}

// Decode extrae el candidato de check-in del primer record de un mensaje.
// Función pura: no toca el store ni la ubicación.
func Decode(rec Record) (Candidate, error) {
	text, ok := WellKnownText(rec)
	if !ok {
		return Candidate{}, ErrCorruptPayload
	}

	parts := strings.Split(text, fieldSeparator)
	if len(parts) == 0 {
		return Candidate{}, ErrCorruptPayload
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Candidate{}, ErrCorruptPayload
	}

	fields := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		fields = append(fields, strings.TrimSpace(p))
	}

	return Candidate{DisplayName: name, Fields: fields}, nil
}

// WellKnownText devuelve el texto de un record well-known "T".
// Status byte: bit 7 = UTF-16, bits 0-5 = largo del código de idioma.
func WellKnownText(rec Record) (string, bool) {
	if rec.TNF != TNFWellKnown || !bytes.Equal(rec.Type, rtdText) {
		return "", false
	}
	if len(rec.Payload) == 0 {
		return "", false
	}

	status := rec.Payload[0]
	langLen := int(status & 0x3F)
	if 1+langLen > len(rec.Payload) {
		return "", false
	}
	body := rec.Payload[1+langLen:]

	if status&0x80 != 0 {
		// UTF-16: unidades de 2 bytes; surrogates sueltos salen como U+FFFD.
		if len(body)%2 != 0 {
			return "", false
		}
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(body)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}

	if !utf8.Valid(body) {
		return "", false
	}
	return string(body), true
}
