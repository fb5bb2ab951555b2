package protocol

import "github.com/sigurn/crc16"

// crcTable is the CRC-16 lookup table shared by the encoder and decoder:
// polynomial 0x1021, initial value 0, no reflection, no final XOR
// (the CRC-16/XMODEM parameter set). The table fold is
// table[((crc>>8)^b)&0xFF] ^ (crc<<8), one byte at a time, so an encoded
// frame decodes against the identical running value.
var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Checksum computes the frame checksum over data, starting from the
// protocol's initial value. The checksummed range of a frame runs from the
// start marker through the end marker inclusive.
func Checksum(data []byte) uint16 {
	return crc16.Update(crc16.Init(crcTable), data, crcTable)
}

// updateChecksum folds data into a running checksum.
func updateChecksum(crc uint16, data []byte) uint16 {
	return crc16.Update(crc, data, crcTable)
}
