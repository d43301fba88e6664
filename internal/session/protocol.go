package session

// CardProtocol is the PC/SC card-protocol tag carried in ATR byte 12.
type CardProtocol byte

// The four card protocols the session names. ISO14443Part3 and
// Felica212K are the two values spec.md's end-to-end scenarios pin
// explicitly (0x11 and 0xF0); ISO15693Part3 and Felica424K are
// illustrative values placed beside them, not taken from a reader.
// poll exchanges APDUs with ISO14443Part3, Felica212K and Felica424K
// cards only; an ISO15693Part3 card is reported as unknown.
const (
	ISO15693Part3 CardProtocol = 0x09
	ISO14443Part3 CardProtocol = 0x11
	Felica212K    CardProtocol = 0xF0
	Felica424K    CardProtocol = 0xF1
)

func (p CardProtocol) String() string {
	switch p {
	case ISO15693Part3:
		return "ISO15693_PART3"
	case ISO14443Part3:
		return "ISO14443_PART3"
	case Felica212K:
		return "FELICA_212K"
	case Felica424K:
		return "FELICA_424K"
	default:
		return "UNKNOWN"
	}
}

// atrProtocolOffset is the byte offset in the ATR carrying the card
// protocol tag.
const atrProtocolOffset = 12
