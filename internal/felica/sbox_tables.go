package felica

// sBoxInv holds the nine inverse substitution tables used by Decrypt.
// Index 8 (nTables) is the extra table applied only to the initial,
// outermost substitution layer (step 1); indices 0..7 are selected
// cyclically by table index during the rotation passes (step 3).
var sBoxInv = [9][256]byte{
	{
		0x31, 0x71, 0x85, 0x2b, 0x16, 0x7d, 0x4e, 0xd2, 0xf2, 0x3d, 0x17, 0x34, 0xdf, 0xce, 0x9e, 0x89,
		0x83, 0x9a, 0x1f, 0xb1, 0xf7, 0x53, 0x79, 0x69, 0x01, 0x04, 0xc7, 0x61, 0x7f, 0x4b, 0x48, 0xe8,
		0x95, 0xdd, 0x96, 0x2c, 0x82, 0x06, 0xff, 0xc4, 0xee, 0xab, 0x55, 0x41, 0x3f, 0x5a, 0x5b, 0x78,
		0xd8, 0xe6, 0x62, 0xc2, 0x44, 0xc0, 0x18, 0x38, 0xb4, 0x5d, 0x28, 0x3c, 0x4a, 0xa6, 0xeb, 0xea,
		0x8b, 0x93, 0x84, 0x19, 0xe7, 0xb2, 0x5c, 0xf8, 0x52, 0x14, 0x9f, 0xe9, 0xc5, 0xd4, 0x5e, 0xb6,
		0xc1, 0x15, 0xc8, 0xef, 0xbe, 0xa5, 0x24, 0xa8, 0xfc, 0x76, 0xd5, 0xfe, 0x73, 0x77, 0x59, 0x51,
		0x33, 0x6f, 0xd6, 0x27, 0x45, 0xad, 0xda, 0x81, 0xaa, 0x1d, 0xae, 0x6c, 0x5f, 0x40, 0x72, 0x09,
		0xf3, 0x3a, 0x74, 0xbf, 0xed, 0x36, 0x9d, 0x1c, 0x0b, 0x65, 0xa2, 0xe0, 0x42, 0x02, 0x67, 0x00,
		0xb8, 0x39, 0x22, 0x91, 0x58, 0x21, 0x8f, 0x46, 0xb0, 0xd7, 0xa4, 0xd9, 0x88, 0xba, 0x05, 0x49,
		0x92, 0x99, 0x97, 0x03, 0xa0, 0x6b, 0x63, 0x13, 0x07, 0x4d, 0x0c, 0x57, 0x25, 0x66, 0x23, 0x80,
		0x29, 0x8c, 0x2a, 0x70, 0xbb, 0x1b, 0xec, 0xc6, 0x98, 0x2e, 0x10, 0xbd, 0xa3, 0xbc, 0x90, 0xcb,
		0x8a, 0xd0, 0x75, 0x4c, 0xfd, 0x87, 0x37, 0xca, 0xf5, 0x0a, 0x56, 0xb9, 0x8d, 0xa7, 0x1e, 0x54,
		0x64, 0xb3, 0xcf, 0xe3, 0xdb, 0xf9, 0x35, 0xc3, 0xd3, 0x8e, 0x4f, 0x2f, 0x30, 0x47, 0xdc, 0x26,
		0x9c, 0x43, 0xf4, 0xe2, 0x7c, 0xb5, 0xde, 0x7a, 0x1a, 0x3e, 0xa1, 0x60, 0x86, 0xfa, 0xa9, 0x0d,
		0x68, 0xd1, 0x9b, 0x20, 0xaf, 0xcc, 0x6a, 0xf1, 0x11, 0x32, 0x0e, 0xc9, 0xcd, 0x7b, 0x94, 0x50,
		0xe5, 0xac, 0xe1, 0xfb, 0x6d, 0x2d, 0xf0, 0x3b, 0x7e, 0x12, 0x6e, 0xe4, 0xb7, 0xf6, 0x0f, 0x08,
	},
	{
		0xcc, 0xee, 0xef, 0x80, 0x8b, 0xb0, 0x3a, 0xae, 0x64, 0xb1, 0xf6, 0x83, 0x72, 0xd5, 0xce, 0x25,
		0x34, 0x8d, 0x70, 0x18, 0xc4, 0xa8, 0xd6, 0xa0, 0x51, 0x74, 0x2a, 0x92, 0x67, 0x54, 0x62, 0x12,
		0x40, 0x1f, 0x03, 0xf5, 0xad, 0x55, 0x2d, 0x1d, 0xa2, 0xdb, 0x56, 0x6f, 0x99, 0x69, 0x3b, 0x5b,
		0x61, 0xc8, 0x7b, 0x15, 0x73, 0xf9, 0x60, 0x58, 0x2e, 0x6a, 0x35, 0xac, 0x4f, 0xc1, 0x7d, 0xf0,
		0xc7, 0x37, 0xbf, 0xe7, 0x68, 0xcd, 0xfc, 0x9d, 0x24, 0xb9, 0x59, 0x6e, 0xfd, 0xb5, 0xd8, 0x04,
		0x23, 0xbb, 0x39, 0x89, 0xf8, 0xa6, 0x20, 0x5a, 0xa5, 0xf4, 0x43, 0xd4, 0x9f, 0xc9, 0xa4, 0xd9,
		0x06, 0x5c, 0xc3, 0x76, 0x98, 0x3c, 0xd1, 0xcf, 0x05, 0x71, 0x30, 0xdf, 0xe4, 0x4d, 0x5e, 0x14,
		0xb7, 0x1b, 0xff, 0x46, 0xf7, 0x87, 0x6d, 0xdd, 0xe8, 0x26, 0x7e, 0xdc, 0x65, 0x79, 0x2b, 0xd7,
		0x81, 0x00, 0xa1, 0xbe, 0x01, 0x78, 0x7f, 0xe2, 0xbd, 0xec, 0x32, 0xba, 0x50, 0x4a, 0x1a, 0x84,
		0x13, 0x5d, 0xb3, 0x66, 0x28, 0x1c, 0x0c, 0x6b, 0xd2, 0x10, 0xe5, 0xde, 0x90, 0x7a, 0xd0, 0xe3,
		0xaa, 0x07, 0x2c, 0xab, 0x94, 0xb6, 0x33, 0x09, 0xf1, 0x3f, 0xea, 0x45, 0xfe, 0xbc, 0x8a, 0x1e,
		0x9c, 0x38, 0x44, 0x3d, 0x48, 0xb8, 0x5f, 0x97, 0xda, 0x7c, 0x9e, 0x3e, 0x41, 0x16, 0xcb, 0x0e,
		0xa9, 0xb2, 0x88, 0xc0, 0x96, 0x91, 0xc5, 0x36, 0xa7, 0xaf, 0x19, 0xeb, 0x8f, 0x42, 0xe0, 0xfa,
		0x9a, 0x86, 0x8c, 0x02, 0xf2, 0x75, 0x82, 0x93, 0x57, 0x53, 0x31, 0x47, 0x0d, 0xe6, 0x77, 0x08,
		0x29, 0xf3, 0xe9, 0x4e, 0x11, 0x63, 0x49, 0x6c, 0x17, 0xc6, 0x22, 0xe1, 0xa3, 0x52, 0x85, 0xc2,
		0x2f, 0xd3, 0x4b, 0x0b, 0xed, 0x27, 0x21, 0x8e, 0x4c, 0x0f, 0x95, 0xb4, 0x0a, 0xfb, 0x9b, 0xca,
	},
	{
		0xb9, 0xbc, 0xb2, 0xbd, 0x8a, 0xc4, 0x2d, 0xb0, 0xac, 0xe8, 0xb4, 0x87, 0x2f, 0x47, 0x83, 0x2a,
		0x6a, 0x2b, 0x44, 0x40, 0x97, 0x0b, 0xe9, 0x58, 0x73, 0xe0, 0xb8, 0x02, 0x50, 0x27, 0x70, 0x3f,
		0xfe, 0x51, 0x10, 0x3d, 0x30, 0x3e, 0xc8, 0x3b, 0x1f, 0x5f, 0x00, 0x49, 0x86, 0x5b, 0xee, 0xcb,
		0x88, 0x0e, 0x08, 0x72, 0x1e, 0x92, 0x5e, 0xf0, 0xd4, 0x4a, 0x62, 0x68, 0xde, 0xd7, 0xe4, 0xd8,
		0x8d, 0x85, 0xae, 0xc9, 0xed, 0xe6, 0xb1, 0x33, 0x6d, 0xbb, 0x6c, 0x25, 0x59, 0x7b, 0x35, 0x71,
		0x12, 0x4b, 0x82, 0x7c, 0xfb, 0xf8, 0x8e, 0xf7, 0x03, 0x29, 0xf5, 0x9c, 0x7d, 0x96, 0xa6, 0x2e,
		0xd9, 0xd0, 0xc2, 0x05, 0x9e, 0xec, 0x3a, 0x31, 0x0d, 0xa0, 0x37, 0x07, 0xd1, 0xc1, 0x21, 0x16,
		0xb6, 0x48, 0xa4, 0x89, 0xd6, 0x19, 0x5a, 0x1d, 0xbe, 0xda, 0xe3, 0x60, 0x42, 0x4e, 0x45, 0x13,
		0x20, 0x61, 0x53, 0x41, 0x26, 0x99, 0x64, 0x56, 0x06, 0x69, 0xcf, 0x9a, 0xa9, 0xfa, 0x67, 0x66,
		0xc3, 0xa8, 0x55, 0x54, 0xe7, 0xc0, 0x43, 0x39, 0x8f, 0x8b, 0xf2, 0x74, 0xeb, 0xf4, 0x24, 0xfc,
		0x75, 0x4c, 0xdc, 0xf6, 0x0a, 0x6e, 0x52, 0x04, 0xb5, 0x76, 0xb7, 0xad, 0x77, 0x1c, 0xa1, 0xce,
		0x93, 0x9f, 0x90, 0xef, 0xe1, 0x65, 0x09, 0xb3, 0xfd, 0xaa, 0x01, 0xe2, 0xba, 0x34, 0xab, 0x95,
		0x4f, 0x5c, 0x57, 0xa2, 0x1b, 0x80, 0x79, 0x0f, 0x9d, 0x9b, 0xd3, 0xa5, 0xdf, 0x36, 0xcc, 0xdd,
		0x1a, 0x81, 0xc5, 0x63, 0x38, 0x6b, 0x11, 0xaf, 0x7a, 0xd2, 0xf9, 0xdb, 0x4d, 0xf3, 0x7f, 0x28,
		0xa3, 0x94, 0x78, 0x18, 0x2c, 0x22, 0x23, 0xca, 0x46, 0x91, 0x32, 0xe5, 0x15, 0xf1, 0x5d, 0x84,
		0x0c, 0xc6, 0xd5, 0xff, 0xc7, 0x3c, 0xbf, 0xa7, 0x7e, 0xea, 0x98, 0x6f, 0x17, 0x8c, 0xcd, 0x14,
	},
	{
		0xba, 0xb8, 0x6b, 0xe3, 0xf5, 0x10, 0xef, 0x49, 0xb7, 0xd0, 0xd1, 0xd9, 0xf3, 0x50, 0x2b, 0xec,
		0x34, 0x5d, 0x5f, 0x22, 0x65, 0x55, 0x68, 0xb2, 0x06, 0x7d, 0x28, 0x91, 0xe0, 0x52, 0x01, 0x70,
		0xf0, 0xbd, 0x42, 0x15, 0x27, 0x19, 0x13, 0x07, 0x03, 0xc0, 0x60, 0x5e, 0x7c, 0xf9, 0xc6, 0x11,
		0x37, 0x63, 0x6e, 0x08, 0xfc, 0x2d, 0x6c, 0xce, 0xc4, 0xe4, 0x4e, 0xf8, 0x8b, 0x5a, 0xd5, 0x1b,
		0xb1, 0x1d, 0x04, 0xd3, 0x1a, 0x59, 0x79, 0xa6, 0x6d, 0x45, 0x4d, 0xa2, 0x72, 0x20, 0x83, 0xe1,
		0x17, 0x3e, 0x87, 0xb0, 0x57, 0x7a, 0x3f, 0xe7, 0xf6, 0x4c, 0xbf, 0x8a, 0x75, 0x24, 0xde, 0xa3,
		0x26, 0xfe, 0x3c, 0xbc, 0x9e, 0x77, 0xbe, 0x21, 0xa4, 0x76, 0xc2, 0xc5, 0x94, 0x92, 0xa5, 0x0b,
		0xee, 0xf7, 0x9b, 0x2a, 0x8d, 0xae, 0x7b, 0x78, 0xc8, 0x3d, 0x73, 0x9d, 0x2c, 0x74, 0xb5, 0xe8,
		0x6f, 0xcb, 0x80, 0x90, 0x67, 0xab, 0x18, 0x00, 0x41, 0x16, 0xb6, 0xa9, 0x1e, 0xbb, 0x33, 0xb4,
		0x85, 0x4b, 0xad, 0x2e, 0x56, 0xcf, 0x14, 0x36, 0x53, 0x0d, 0x96, 0xa1, 0x97, 0xf1, 0xfb, 0x1f,
		0x05, 0xca, 0x7f, 0x3b, 0x25, 0x3a, 0x38, 0x88, 0xed, 0x1c, 0xaa, 0x5c, 0x82, 0x58, 0x2f, 0x4f,
		0xa0, 0x62, 0x29, 0x64, 0xe2, 0x44, 0x46, 0x23, 0x0a, 0x31, 0x81, 0xcc, 0xd8, 0x8c, 0xda, 0x4a,
		0x84, 0xd6, 0x7e, 0x02, 0xdf, 0x51, 0xe5, 0xb3, 0x95, 0x71, 0x39, 0xf4, 0x66, 0xfa, 0x54, 0xff,
		0x8f, 0xc1, 0xd2, 0x9c, 0x0c, 0xeb, 0x43, 0x89, 0x0f, 0xdb, 0x32, 0x6a, 0x48, 0x40, 0xa8, 0xfd,
		0x99, 0xa7, 0x93, 0xaf, 0xe9, 0xd7, 0x12, 0x5b, 0xe6, 0xdd, 0x0e, 0x9a, 0x98, 0x09, 0x8e, 0xc7,
		0xd4, 0xf2, 0xac, 0x61, 0xcd, 0xb9, 0x69, 0x35, 0x9f, 0xc3, 0x47, 0x30, 0xc9, 0x86, 0xea, 0xdc,
	},
	{
		0x73, 0xa3, 0x72, 0x71, 0xa1, 0x3e, 0x08, 0xad, 0xe8, 0x33, 0xc7, 0xaa, 0xd6, 0xa2, 0x6f, 0x29,
		0xcf, 0x7b, 0xb5, 0x78, 0xf2, 0x3c, 0x4d, 0x64, 0xfd, 0x83, 0xb8, 0xc9, 0xb6, 0x4e, 0x81, 0x9a,
		0xc5, 0x42, 0xf1, 0x12, 0x00, 0x21, 0x6e, 0xd3, 0xcd, 0xee, 0x5a, 0xe5, 0x3b, 0xff, 0xef, 0xfa,
		0x41, 0x0f, 0xf7, 0x07, 0x0d, 0xe7, 0x1b, 0x85, 0x51, 0x39, 0x5d, 0x2e, 0x59, 0x97, 0x18, 0x0b,
		0x02, 0xa0, 0xbd, 0xe4, 0xbc, 0x66, 0x47, 0x26, 0x34, 0x19, 0xe1, 0xb3, 0x57, 0xcb, 0xb7, 0xae,
		0x01, 0x9c, 0x2a, 0x99, 0x14, 0xf4, 0xc4, 0xbb, 0x68, 0x48, 0x0a, 0x9e, 0x92, 0x65, 0x74, 0xb4,
		0x11, 0x2d, 0x53, 0xf3, 0x6b, 0x6a, 0xd9, 0xfc, 0x36, 0xea, 0x76, 0x87, 0xf8, 0xeb, 0x22, 0x90,
		0xfb, 0x27, 0x0e, 0x28, 0x8f, 0xe2, 0x04, 0x46, 0xd2, 0x6d, 0x9b, 0xb2, 0x10, 0x8a, 0x1f, 0x38,
		0xa9, 0x82, 0x54, 0xc8, 0x0c, 0xd7, 0xdd, 0x1d, 0x5f, 0x37, 0x75, 0x2c, 0x4a, 0x05, 0xbe, 0xb1,
		0x32, 0x9d, 0x96, 0x4f, 0xce, 0x1e, 0xd5, 0x49, 0x30, 0xe3, 0x8b, 0x3f, 0xe9, 0x63, 0xaf, 0xda,
		0x13, 0x43, 0xba, 0x94, 0x3a, 0x17, 0xec, 0x1c, 0x8d, 0x55, 0x20, 0xd4, 0x56, 0xd1, 0x69, 0xde,
		0xd0, 0xb0, 0xa4, 0xc0, 0x52, 0x80, 0x3d, 0xf9, 0xd8, 0xf0, 0x84, 0x09, 0xa5, 0x89, 0x25, 0xa6,
		0xf5, 0x7d, 0x91, 0x03, 0x5e, 0xc2, 0x2f, 0xca, 0xc6, 0xe6, 0xe0, 0x79, 0x77, 0x8e, 0xf6, 0x23,
		0x5c, 0xab, 0x4b, 0x44, 0x86, 0xa7, 0x7c, 0xdb, 0xa8, 0x40, 0x45, 0x6c, 0x70, 0x24, 0xdf, 0xdc,
		0xed, 0x2b, 0x61, 0xc1, 0x9f, 0x58, 0x06, 0x4c, 0x15, 0x50, 0x7e, 0x35, 0x95, 0xc3, 0x5b, 0xac,
		0x88, 0x62, 0x7a, 0x93, 0xbf, 0x1a, 0x8c, 0x67, 0x7f, 0x98, 0xfe, 0xb9, 0xcc, 0x60, 0x16, 0x31,
	},
	{
		0x0e, 0x71, 0x21, 0xa8, 0x16, 0x6a, 0x35, 0xe6, 0x77, 0x94, 0x8d, 0x23, 0x96, 0x9f, 0xd3, 0xe2,
		0xcb, 0x5f, 0xae, 0x59, 0x5a, 0x00, 0x14, 0x31, 0x22, 0x6f, 0x63, 0x28, 0x25, 0x43, 0x5b, 0x83,
		0x0c, 0x7a, 0xc3, 0x27, 0x03, 0xc2, 0xa5, 0x1b, 0x04, 0x2f, 0x34, 0xea, 0x73, 0x02, 0x39, 0x33,
		0xb3, 0x1d, 0x45, 0x12, 0x2c, 0x81, 0x2b, 0x57, 0x44, 0x4d, 0x11, 0xb6, 0xbe, 0xe0, 0xbc, 0x85,
		0x61, 0xc1, 0x4f, 0x55, 0x32, 0xeb, 0xfe, 0x0d, 0x09, 0x15, 0xbb, 0x7e, 0xa0, 0xf4, 0xba, 0x80,
		0xd2, 0x37, 0xd5, 0x93, 0xb4, 0xdc, 0x2e, 0x74, 0x76, 0x92, 0xe5, 0x7f, 0x2d, 0x29, 0xe8, 0xaf,
		0x3b, 0x50, 0x5e, 0x4c, 0xfd, 0xa7, 0x95, 0x84, 0x4b, 0x54, 0xb2, 0xb0, 0x49, 0x8e, 0xd7, 0xc4,
		0x5d, 0x3e, 0x9b, 0x42, 0xab, 0xb7, 0x78, 0xd4, 0x87, 0x97, 0xb8, 0x60, 0xf8, 0xcf, 0xf9, 0x58,
		0x86, 0x52, 0xe9, 0xcc, 0x0a, 0x1e, 0xa1, 0xa4, 0x08, 0x8a, 0xf6, 0x66, 0x99, 0xad, 0xa6, 0xff,
		0x05, 0xf5, 0x5c, 0x8b, 0x6d, 0xc0, 0x70, 0x64, 0x1f, 0x79, 0x82, 0x9a, 0x65, 0xfc, 0x47, 0x30,
		0xd6, 0xa2, 0xbf, 0xe3, 0xaa, 0xe4, 0x26, 0xee, 0x3c, 0xbd, 0x9c, 0x56, 0x89, 0xda, 0x2a, 0x7b,
		0xc8, 0x46, 0xac, 0xdb, 0xb1, 0xec, 0xf0, 0x1c, 0x3d, 0x07, 0x7c, 0x67, 0xe1, 0x4a, 0xf1, 0xcd,
		0x51, 0xf3, 0x20, 0xed, 0x18, 0xf2, 0x0f, 0x06, 0xa3, 0x88, 0x91, 0x6b, 0xde, 0x13, 0xb5, 0x98,
		0x10, 0x53, 0xfa, 0x19, 0x1a, 0x38, 0xfb, 0x68, 0x3a, 0xdf, 0x4e, 0x62, 0x01, 0xd1, 0xc5, 0x9e,
		0x3f, 0xdd, 0x0b, 0xb9, 0xce, 0xca, 0x24, 0x6e, 0xe7, 0xa9, 0x36, 0x72, 0x48, 0xd8, 0x41, 0x8c,
		0x6c, 0xd9, 0xc6, 0xef, 0x69, 0x75, 0xf7, 0xc7, 0x7d, 0x90, 0x17, 0xd0, 0xc9, 0x40, 0x8f, 0x9d,
	},
	{
		0x10, 0x5e, 0x8a, 0x3e, 0xd3, 0x6c, 0x70, 0xea, 0x42, 0x96, 0xac, 0xe9, 0x6d, 0x9d, 0x01, 0x77,
		0x79, 0xd1, 0x3d, 0xcf, 0x0e, 0x04, 0x88, 0x0a, 0x5f, 0x5a, 0x91, 0x22, 0xf1, 0x74, 0xcd, 0xec,
		0xb9, 0xf4, 0xa0, 0x32, 0xcb, 0xc2, 0x87, 0x68, 0x36, 0xd0, 0x85, 0xf8, 0x7e, 0x12, 0x2b, 0x62,
		0x05, 0xe8, 0x7b, 0xe2, 0x2f, 0x7c, 0x1c, 0x43, 0xa5, 0x49, 0xb3, 0xbe, 0x13, 0x45, 0x94, 0x56,
		0xd6, 0xb2, 0xb1, 0x15, 0x4c, 0x5c, 0x9b, 0xbb, 0x99, 0x97, 0x37, 0xdc, 0x89, 0x78, 0x39, 0x07,
		0x1e, 0xa4, 0x75, 0xf2, 0x4d, 0x8f, 0x2d, 0x57, 0xfc, 0x46, 0x34, 0xd9, 0xba, 0xf3, 0xc7, 0xbf,
		0xc9, 0x09, 0x02, 0x31, 0xa2, 0xab, 0x48, 0x3b, 0xfe, 0x55, 0x0c, 0x84, 0x7d, 0xaa, 0xe3, 0xa8,
		0xc0, 0xf0, 0x82, 0x47, 0x9f, 0x17, 0x92, 0xf6, 0xe1, 0x81, 0xfd, 0xe6, 0x26, 0xb6, 0x80, 0x5d,
		0xc3, 0xff, 0x61, 0x50, 0x28, 0x19, 0x51, 0x44, 0x0f, 0xda, 0x23, 0x54, 0x5b, 0x53, 0xe5, 0x67,
		0x95, 0x38, 0xbc, 0x0d, 0x83, 0x27, 0x2a, 0x11, 0x2e, 0xb0, 0xa7, 0x90, 0xf7, 0x4e, 0xad, 0x93,
		0xc6, 0x1d, 0x76, 0x9c, 0x9e, 0x33, 0xfb, 0x7a, 0xf5, 0x24, 0x4f, 0x4b, 0x3f, 0x1b, 0x8b, 0x41,
		0x64, 0xed, 0xa9, 0x6e, 0x21, 0x52, 0x59, 0x18, 0xd7, 0x1a, 0xb4, 0x0b, 0x71, 0xbd, 0x06, 0x35,
		0x66, 0x6a, 0x25, 0xcc, 0xee, 0x72, 0x63, 0x2c, 0xf9, 0x6f, 0xa1, 0x3a, 0xc8, 0xef, 0xb7, 0xaf,
		0xd5, 0x8c, 0x6b, 0xdf, 0xe0, 0xca, 0x00, 0xde, 0x58, 0xb5, 0x16, 0x3c, 0x40, 0xd4, 0xa6, 0x29,
		0x9a, 0x8e, 0x08, 0xdd, 0xb8, 0x30, 0xe7, 0xd8, 0xc5, 0x8d, 0x73, 0x7f, 0x14, 0x4a, 0xdb, 0xc4,
		0xc1, 0x1f, 0xfa, 0xe4, 0xeb, 0x65, 0x20, 0xa3, 0xce, 0x69, 0x60, 0x98, 0x03, 0x86, 0xae, 0xd2,
	},
	{
		0x4f, 0xdd, 0x77, 0xbf, 0x41, 0xa7, 0xd0, 0x1d, 0x4a, 0xe7, 0xe5, 0xde, 0xbb, 0xfd, 0x93, 0x0e,
		0x90, 0xdc, 0x76, 0x28, 0x56, 0xa3, 0xb4, 0x54, 0xf1, 0x86, 0x4b, 0xfc, 0xcc, 0x2d, 0xfb, 0xb5,
		0xe4, 0x5c, 0x2c, 0x9c, 0xec, 0x8e, 0x32, 0x0b, 0xb1, 0xff, 0x6a, 0x11, 0x2a, 0x0a, 0xae, 0xdf,
		0xe6, 0x1e, 0x29, 0xfe, 0x00, 0xa1, 0xd8, 0xd5, 0x02, 0xd1, 0x4e, 0x31, 0xc8, 0xe1, 0x4d, 0xed,
		0x60, 0x42, 0x2f, 0x5d, 0x01, 0x1c, 0xbe, 0x26, 0x84, 0x20, 0x3f, 0x9d, 0xc7, 0x72, 0xeb, 0x80,
		0x08, 0xf7, 0xa2, 0x63, 0xc0, 0xc3, 0xef, 0x6e, 0x15, 0x71, 0x74, 0x25, 0x99, 0x1b, 0x91, 0x73,
		0x94, 0xf0, 0x38, 0x8f, 0x9a, 0xf5, 0x83, 0xcb, 0xd2, 0x8c, 0x12, 0x1f, 0x6c, 0xb3, 0xaa, 0x82,
		0x51, 0xba, 0x37, 0x57, 0xd3, 0x47, 0xab, 0xd6, 0x1a, 0xa0, 0x36, 0xf2, 0x35, 0xd4, 0x22, 0x95,
		0x3e, 0x62, 0x85, 0xd9, 0x07, 0x3c, 0x13, 0x66, 0x34, 0xf4, 0x3a, 0x8a, 0xd7, 0x81, 0x0c, 0xac,
		0x40, 0xb9, 0x39, 0xea, 0x18, 0x96, 0x53, 0xb7, 0x48, 0x21, 0x24, 0xa9, 0x92, 0x0d, 0xca, 0x2e,
		0x6d, 0xb0, 0x8b, 0x45, 0xe2, 0x09, 0x10, 0x3b, 0x9e, 0x05, 0x5a, 0xf6, 0x52, 0x98, 0x87, 0x5b,
		0xcf, 0x2b, 0xda, 0x79, 0xc1, 0x0f, 0x30, 0xad, 0x14, 0x50, 0xc5, 0xa8, 0xaf, 0x58, 0x19, 0xf9,
		0xc9, 0x7e, 0x7b, 0x9b, 0x6b, 0x16, 0x44, 0x49, 0x70, 0xa5, 0xb2, 0x8d, 0xbd, 0x43, 0xc4, 0x78,
		0x7d, 0xcd, 0x97, 0x61, 0xbc, 0x55, 0x7f, 0xe0, 0x23, 0x89, 0xb8, 0x59, 0xc6, 0x03, 0xc2, 0x9f,
		0x27, 0x3d, 0x5f, 0x7c, 0x5e, 0xe8, 0x17, 0x67, 0xe9, 0x75, 0x88, 0xb6, 0xee, 0xa6, 0x65, 0x68,
		0x33, 0xce, 0xdb, 0x69, 0x64, 0xf3, 0xf8, 0x6f, 0x46, 0x7a, 0xa4, 0xe3, 0xfa, 0x06, 0x04, 0x4c,
	},
	{
		0x2a, 0x81, 0xf9, 0x2f, 0xed, 0x90, 0x00, 0x44, 0x4c, 0x93, 0x49, 0x70, 0x3c, 0x6c, 0xe3, 0x96,
		0xf2, 0xce, 0xcd, 0x13, 0x48, 0x92, 0xd1, 0xfc, 0xab, 0x79, 0xe9, 0xc7, 0x8e, 0xdf, 0xa4, 0x3d,
		0xf7, 0x71, 0x42, 0xcc, 0xdd, 0xfb, 0x6f, 0xf8, 0x65, 0x0f, 0x37, 0x68, 0x6d, 0xcf, 0x88, 0x34,
		0x0b, 0xa1, 0xb3, 0xa7, 0x53, 0xfa, 0x47, 0xbd, 0x33, 0x72, 0x89, 0x87, 0xa8, 0xfe, 0xac, 0x19,
		0x98, 0x5a, 0x7a, 0xe8, 0xf1, 0xc3, 0xf3, 0x7b, 0xe4, 0x40, 0xeb, 0x61, 0x14, 0xf6, 0xc1, 0x20,
		0x64, 0xd7, 0x6a, 0xad, 0x7f, 0x41, 0x1e, 0xb2, 0x28, 0x1a, 0x06, 0x5f, 0xf0, 0x4a, 0x30, 0x2d,
		0xca, 0x15, 0xc6, 0x3b, 0x10, 0x7c, 0xbc, 0xd0, 0xd4, 0x55, 0xae, 0xee, 0x39, 0x95, 0x74, 0xb5,
		0x8b, 0x54, 0xe5, 0x86, 0xb4, 0x5b, 0xb8, 0xde, 0x63, 0x4b, 0x7d, 0xef, 0x1f, 0xec, 0x36, 0x32,
		0x18, 0x3a, 0xa2, 0x12, 0x0a, 0x8c, 0x9e, 0x29, 0x83, 0x6b, 0xdb, 0xff, 0x22, 0x80, 0x67, 0x6e,
		0x9c, 0x9b, 0x78, 0x08, 0xbf, 0x1d, 0x11, 0xc0, 0x4f, 0xcb, 0x05, 0xaf, 0xbe, 0x31, 0xda, 0xaa,
		0x0c, 0x75, 0xd3, 0x09, 0x52, 0x16, 0x24, 0x59, 0xe6, 0x62, 0x69, 0x84, 0x27, 0xb0, 0x8f, 0x3f,
		0x57, 0xf4, 0x85, 0xc5, 0xb1, 0x0d, 0x56, 0x23, 0xa3, 0x04, 0xd9, 0x50, 0x7e, 0xd8, 0x3e, 0x99,
		0x07, 0x82, 0x9d, 0xba, 0xe7, 0x8d, 0x2b, 0x02, 0xc4, 0x5d, 0xe0, 0x35, 0xfd, 0x45, 0x5e, 0xdc,
		0xa9, 0xea, 0xd6, 0x26, 0xa0, 0xa5, 0x73, 0x1c, 0x4e, 0x21, 0x5c, 0xf5, 0xc8, 0xb6, 0x97, 0x91,
		0x38, 0x66, 0xc9, 0xb9, 0xa6, 0x46, 0x1b, 0x9a, 0x9f, 0xe1, 0x4d, 0x03, 0x43, 0xd2, 0x2e, 0xbb,
		0x94, 0x0e, 0xd5, 0x17, 0xc2, 0x76, 0x51, 0x58, 0x8a, 0x2c, 0xe2, 0x25, 0x60, 0x77, 0x01, 0xb7,
	},
}

