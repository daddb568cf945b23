package tags

import "bytes"

// TNF (Type Name Format) de un record NDEF.
type TNF uint8

const (
	TNFEmpty       TNF = 0x00
	TNFWellKnown   TNF = 0x01
	TNFMedia       TNF = 0x02
	TNFAbsoluteURI TNF = 0x03
	TNFExternal    TNF = 0x04
	TNFUnknown     TNF = 0x05
	TNFUnchanged   TNF = 0x06
)

var (
	rtdText = []byte("T")
	rtdURI  = []byte("U")
)

// Record es un record NDEF tal como lo entrega el lector.
type Record struct {
	TNF     TNF
	Type    []byte
	ID      []byte
	Payload []byte
}

// Message es el mensaje NDEF leído del tag. Solo se usa el primer record.
type Message struct {
	Records []Record
}

func (m *Message) IsEmpty() bool {
	return m == nil || len(m.Records) == 0
}

// First devuelve el primer record. Llamar solo si !IsEmpty().
func (m *Message) First() Record {
	return m.Records[0]
}

type Kind string

const (
	KindEmpty    Kind = "empty"
	KindText     Kind = "text"
	KindURI      Kind = "uri"
	KindMedia    Kind = "media"
	KindExternal Kind = "external"
	KindOther    Kind = "other"
)

// KindOf clasifica un record según TNF + type.
func KindOf(rec Record) Kind {
	switch rec.TNF {
	case TNFEmpty:
		return KindEmpty
	case TNFWellKnown:
		switch {
		case bytes.Equal(rec.Type, rtdText):
			return KindText
		case bytes.Equal(rec.Type, rtdURI):
			return KindURI
		}
		return KindOther
	case TNFAbsoluteURI:
		return KindURI
	case TNFMedia:
		return KindMedia
	case TNFExternal, TNFUnknown, TNFUnchanged:
		return KindExternal
	default:
		return KindOther
	}
}

// NewTextRecord arma un record well-known de texto UTF-8.
// El status byte lleva el largo del código de idioma en los bits 0-5.
func NewTextRecord(lang, text string) Record {
	if len(lang) > 0x3F {
		lang = lang[:0x3F]
	}
	payload := make([]byte, 0, 1+len(lang)+len(text))
	payload = append(payload, byte(len(lang)))
	payload = append(payload, lang...)
	payload = append(payload, text...)

	return Record{
		TNF:     TNFWellKnown,
		Type:    append([]byte(nil), rtdText...),
		Payload: payload,
	}
}
