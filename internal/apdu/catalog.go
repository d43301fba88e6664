// Package apdu holds the byte-exact APDU and control-code constants the
// session state machine exchanges with the reader, grounded on the
// command bytes in oo-developer/acr122u's classic.go/hardware.go and on
// the IOCTL usage in original_source/src/scard.cpp.
package apdu

// UID queries the card's UID via the standard PC/SC pseudo-APDU. Works
// across ISO 14443 and FeliCa.
var UID = []byte{0xFF, 0xCA, 0x00, 0x00, 0x00}

// DefaultMifareKey is the factory-default MIFARE Classic key used to
// authenticate block 2 before reading it.
var DefaultMifareKey = []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// LoadKey builds the "load key into reader slot 0" APDU for a 6-byte
// MIFARE Classic key.
func LoadKey(key []byte) []byte {
	cmd := make([]byte, 0, 5+len(key))
	cmd = append(cmd, 0xFF, 0x82, 0x00, 0x00, byte(len(key)))
	return append(cmd, key...)
}

// AuthBlock2 authenticates the sector containing block 2 using key type A
// and the key loaded into slot 0.
var AuthBlock2 = []byte{0xFF, 0x86, 0x00, 0x00, 0x05, 0x01, 0x00, 0x02, 0x60, 0x00}

// ReadBlock2 reads the 16-byte block 2. The response carries the 10-byte
// access-code payload at offset 6.
var ReadBlock2 = []byte{0xFF, 0xB0, 0x00, 0x02, 0x10}

// PiccOperatingParamIoctl is IOCTL_SMARTCARD_VENDOR_IFD_EXCHANGE, the
// vendor-defined control code the reader expects the PICC operating
// parameter command on.
const PiccOperatingParamIoctl = 3500

// PiccOperatingParam is the reader escape command that advertises which
// PICC types (ISO14443-A/B, FeliCa, Topaz) the reader engages. Sent once
// at init via control().
var PiccOperatingParam = []byte{0xE0, 0x00, 0x00, 0x01, 0xFF}

// felicaReadBlock0Header is the constant prefix of the FeliCa S_PAD-0
// read template: a pseudo-InDataExchange wrapper selecting service
// 0x000B, block 0. Bytes 10..17 of the assembled command are the card's
// 8 raw UID bytes, spliced in by FelicaReadBlock0.
var felicaReadBlock0Header = []byte{
	0xFF, 0xFE, 0x00, 0x00, 0x00, 0x14, 0xD4, 0x42,
	0x01,
	0x8 << 4,
}

// felicaReadBlock0Trailer follows the 8 UID bytes: service count, the
// 0x000B service code (little-endian), block count, and the S_PAD-0
// block-list element. Together with the 10-byte header and the 8-byte
// UID this brings the command to the spec-mandated 23 bytes.
var felicaReadBlock0Trailer = []byte{
	0x01, 0x0B, 0x00,
	0x01,
	0x80,
}

// FelicaReadBlock0 builds the 23-byte FeliCa S_PAD-0 block-0 read command
// for the given 8-byte raw UID. It never mutates a shared template: each
// call allocates a fresh command.
func FelicaReadBlock0(uid [8]byte) []byte {
	cmd := make([]byte, 0, len(felicaReadBlock0Header)+len(uid)+len(felicaReadBlock0Trailer))
	cmd = append(cmd, felicaReadBlock0Header...)
	cmd = append(cmd, uid[:]...)
	cmd = append(cmd, felicaReadBlock0Trailer...)
	return cmd
}
