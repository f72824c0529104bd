// This file is part of sat6502.
//
// sat6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sat6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sat6502.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
)

// Sentinel patterns for errors returned by ParseINES().
const (
	UnsupportedHeader = "cartridgeloader: unsupported header (%s)"
	TruncatedData     = "cartridgeloader: truncated data (%d bytes, expected %d)"
)

const (
	headerSize = 16
	chrBank    = 8192
	magic      = "NES\x1a"
)

type header struct {
	Magic    [4]byte
	NumPRG   byte
	NumCHR   byte
	Flags6   byte
	Flags7   byte
	Reserved [8]byte
}

const (
	flags6Trainer = 0x04
	flags7Format  = 0x0c
	formatNES20   = 0x08
)

var diskDude = []byte("DiskDude!")

// Mapper returns the mapper number encoded in the flags.
func (h header) Mapper() int {
	return int(h.Flags7&0xf0) | int(h.Flags6>>4)
}

// ParseINES parses the iNES data and returns a cartridge ROM with the name.
func ParseINES(data []byte, name string) (cartridge.ROM, error) {
	if len(data) < headerSize {
		return cartridge.ROM{}, curated.Errorf(TruncatedData, len(data), headerSize)
	}

	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return cartridge.ROM{}, curated.Errorf("cartridgeloader: %v", err)
	}

	if string(h.Magic[:]) != magic {
		return cartridge.ROM{}, curated.Errorf(UnsupportedHeader, "not an iNES file")
	}

	if h.Flags7&flags7Format == formatNES20 {
		return cartridge.ROM{}, curated.Errorf(UnsupportedHeader, "NES 2.0 format")
	}

	// the signature occupies bytes 7 to 15 of the header
	if bytes.Equal(data[7:headerSize], diskDude) {
		return cartridge.ROM{}, curated.Errorf(UnsupportedHeader, "DiskDude! signature")
	}

	for i, b := range h.Reserved {
		if b != 0 {
			return cartridge.ROM{}, curated.Errorf(UnsupportedHeader, fmt.Sprintf("reserved byte %d is not zero", i+8))
		}
	}

	if h.Flags6&flags6Trainer == flags6Trainer {
		return cartridge.ROM{}, curated.Errorf(UnsupportedHeader, "trainer present")
	}

	if h.NumPRG == 0 {
		return cartridge.ROM{}, curated.Errorf(UnsupportedHeader, "no PRG-ROM")
	}

	prg := int(h.NumPRG) * cartridge.BankSize
	chr := int(h.NumCHR) * chrBank
	if len(data) < headerSize+prg+chr {
		return cartridge.ROM{}, curated.Errorf(TruncatedData, len(data), headerSize+prg+chr)
	}

	rom, err := cartridge.NewBuilder().
		Name(name).
		Mapper(h.Mapper()).
		PRG(data[headerSize : headerSize+prg]).
		Build()
	if err != nil {
		return cartridge.ROM{}, curated.Errorf("cartridgeloader: %v", err)
	}

	return rom, nil
}
