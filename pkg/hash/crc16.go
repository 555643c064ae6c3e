package hash

import (
	gohash "hash"
	"sync"
)

const (
	// CRC16ARCPolynomial is the reflected CRC-16/ARC polynomial.
	CRC16ARCPolynomial uint16 = 0xA001
	// CRC16CCITTPolynomial is the reflected CCITT polynomial used by X.25.
	CRC16CCITTPolynomial uint16 = 0x8408
)

var (
	arcOnce  sync.Once
	arcTable *crc16Table
	x25Once  sync.Once
	x25Table *crc16Table
)

type crc16Table [256]uint16

func makeCRC16Table(poly uint16) *crc16Table {
	t := new(crc16Table)
	for i := range t {
		entry := uint16(i)
		for j := 0; j < 8; j++ {
			if entry&1 == 1 {
				entry = (entry >> 1) ^ poly
			} else {
				entry >>= 1
			}
		}
		t[i] = entry
	}
	return t
}

// crc16 is a reflected, table driven 16-bit CRC with configurable
// initial value and final XOR. Sum appends the value big-endian.
type crc16 struct {
	table    *crc16Table
	init     uint16
	finalXOR uint16
	crc      uint16
}

var _ gohash.Hash = (*crc16)(nil)

// NewCRC16 returns a CRC-16/ARC hash (init 0x0000, no final XOR).
func NewCRC16() gohash.Hash {
	arcOnce.Do(func() { arcTable = makeCRC16Table(CRC16ARCPolynomial) })
	return &crc16{table: arcTable}
}

// NewCRC16CCITT returns a CRC-16/X-25 hash (init 0xFFFF, final XOR 0xFFFF).
func NewCRC16CCITT() gohash.Hash {
	x25Once.Do(func() { x25Table = makeCRC16Table(CRC16CCITTPolynomial) })
	return &crc16{table: x25Table, init: 0xFFFF, finalXOR: 0xFFFF, crc: 0xFFFF}
}

func (c *crc16) Write(p []byte) (int, error) {
	crc := c.crc
	for _, b := range p {
		crc = (crc >> 8) ^ c.table[byte(crc)^b]
	}
	c.crc = crc
	return len(p), nil
}

func (c *crc16) Sum(in []byte) []byte {
	v := c.crc ^ c.finalXOR
	return append(in, byte(v>>8), byte(v))
}

func (c *crc16) Reset()         { c.crc = c.init }
func (c *crc16) Size() int      { return 2 }
func (c *crc16) BlockSize() int { return 1 }
