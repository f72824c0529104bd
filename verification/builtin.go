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

package verification

import "github.com/jetsetilly/sat6502/hardware/memory/memorymap"

func v8(v uint8) *uint8 {
	return &v
}

func v16(v uint16) *uint16 {
	return &v
}

// Builtin is the list of scenarios that are run when no scenario file is
// given. Programs in RAM have an origin of zero.
var Builtin = []Scenario{
	{
		Name:    "LDA immediate",
		Program: []uint8{0xa9, 0x5a},
		Cycles:  2,
		Expect:  Expect{A: v8(0x5a), PC: v16(0x0003), P: "s.-...z."},
	},
	{
		Name:    "LDA immediate zero flag",
		Program: []uint8{0xa9, 0x00},
		Cycles:  2,
		Expect:  Expect{A: v8(0x00), P: "s.-...Z."},
	},
	{
		Name:    "LDX immediate sign flag",
		Program: []uint8{0xa2, 0x80},
		Cycles:  2,
		Expect:  Expect{X: v8(0x80), P: "S.-...z."},
	},
	{
		Name:    "LDY immediate",
		Program: []uint8{0xa0, 0x33},
		Cycles:  2,
		Expect:  Expect{Y: v8(0x33), PC: v16(0x0003)},
	},
	{
		Name:    "LDA zero page",
		Program: []uint8{0xa5, 0x10},
		RAM:     map[uint16]uint8{0x0010: 0x80},
		Cycles:  3,
		Expect:  Expect{A: v8(0x80), PC: v16(0x0003), P: "S.-...z."},
	},
	{
		Name:        "LDA zero page,X wraps",
		Description: "the effective address of zero page indexing never leaves the zero page",
		Program:     []uint8{0xa2, 0xff, 0xb5, 0x10},
		RAM:         map[uint16]uint8{0x000f: 0x42, 0x010f: 0x13},
		Cycles:      6,
		Expect:      Expect{A: v8(0x42), PC: v16(0x0005)},
	},
	{
		Name:    "LDX zero page,Y",
		Program: []uint8{0xa0, 0x02, 0xb6, 0x20},
		RAM:     map[uint16]uint8{0x0022: 0x5e},
		Cycles:  6,
		Expect:  Expect{X: v8(0x5e)},
	},
	{
		Name:    "LDA absolute",
		Program: []uint8{0xad, 0x34, 0x02},
		RAM:     map[uint16]uint8{0x0234: 0x21},
		Cycles:  4,
		Expect:  Expect{A: v8(0x21), PC: v16(0x0004)},
	},
	{
		Name:    "LDA absolute mirrored",
		Program: []uint8{0xad, 0x34, 0x1a},
		RAM:     map[uint16]uint8{0x0234: 0x2f},
		Cycles:  4,
		Expect:  Expect{A: v8(0x2f)},
	},
	{
		Name:    "LDA absolute,X",
		Program: []uint8{0xa2, 0x02, 0xbd, 0x10, 0x00},
		RAM:     map[uint16]uint8{0x0012: 0x77},
		Cycles:  6,
		Expect:  Expect{A: v8(0x77), PC: v16(0x0006)},
	},
	{
		Name:    "LDA absolute,X page crossing",
		Program: []uint8{0xa2, 0x10, 0xbd, 0xf8, 0x00},
		RAM:     map[uint16]uint8{0x0108: 0x99},
		Cycles:  7,
		Expect:  Expect{A: v8(0x99), PC: v16(0x0006)},
	},
	{
		Name:        "LDA absolute,X page crossing is incomplete",
		Description: "the load is not complete until the extra cycle has run",
		Program:     []uint8{0xa2, 0x10, 0xbd, 0xf8, 0x00},
		RAM:         map[uint16]uint8{0x0108: 0x99},
		Cycles:      6,
		Expect:      Expect{A: v8(0x00)},
	},
	{
		Name:    "LDY absolute,X page crossing",
		Program: []uint8{0xa2, 0x01, 0xbc, 0xff, 0x01},
		RAM:     map[uint16]uint8{0x0200: 0x0c},
		Cycles:  7,
		Expect:  Expect{Y: v8(0x0c)},
	},
	{
		Name:    "LDA absolute,Y",
		Program: []uint8{0xa0, 0x03, 0xb9, 0x00, 0x03},
		RAM:     map[uint16]uint8{0x0303: 0xe0},
		Cycles:  6,
		Expect:  Expect{A: v8(0xe0), P: "S.-...z."},
	},
	{
		Name:    "LDA (indirect,X)",
		Program: []uint8{0xa2, 0x04, 0xa1, 0x20},
		RAM:     map[uint16]uint8{0x0024: 0x00, 0x0025: 0x03, 0x0300: 0x5c},
		Cycles:  8,
		Expect:  Expect{A: v8(0x5c), PC: v16(0x0005)},
	},
	{
		Name:        "LDA (indirect,X) pointer wraps",
		Description: "the pointer is read from the zero page. here it is the first two bytes of the program",
		Program:     []uint8{0xa2, 0x01, 0xa1, 0xff},
		RAM:         map[uint16]uint8{0x01a2: 0x4d},
		Cycles:      8,
		Expect:      Expect{A: v8(0x4d)},
	},
	{
		Name:    "LDA (indirect),Y",
		Program: []uint8{0xa0, 0x10, 0xb1, 0x40},
		RAM:     map[uint16]uint8{0x0040: 0x00, 0x0041: 0x02, 0x0210: 0x6d},
		Cycles:  7,
		Expect:  Expect{A: v8(0x6d), PC: v16(0x0005)},
	},
	{
		Name:    "LDA (indirect),Y page crossing",
		Program: []uint8{0xa0, 0x10, 0xb1, 0x40},
		RAM:     map[uint16]uint8{0x0040: 0xf8, 0x0041: 0x02, 0x0308: 0x6e},
		Cycles:  8,
		Expect:  Expect{A: v8(0x6e)},
	},
	{
		Name:    "STA zero page",
		Program: []uint8{0xa9, 0x3c, 0x85, 0x80},
		Cycles:  5,
		Expect:  Expect{PC: v16(0x0005), RAM: map[uint16]uint8{0x0080: 0x3c}},
	},
	{
		Name:    "STA absolute mirrored",
		Program: []uint8{0xa9, 0x3c, 0x8d, 0x40, 0x08},
		Cycles:  6,
		Expect:  Expect{RAM: map[uint16]uint8{0x0040: 0x3c}},
	},
	{
		Name:    "STA absolute,X",
		Program: []uint8{0xa2, 0x05, 0xa9, 0x11, 0x9d, 0x00, 0x03},
		Cycles:  9,
		Expect:  Expect{PC: v16(0x0008), RAM: map[uint16]uint8{0x0305: 0x11}},
	},
	{
		Name:    "STA absolute,Y page crossing",
		Program: []uint8{0xa0, 0x20, 0xa9, 0x22, 0x99, 0xf0, 0x03},
		Cycles:  9,
		Expect:  Expect{RAM: map[uint16]uint8{0x0410: 0x22}},
	},
	{
		Name:    "STA (indirect),Y",
		Program: []uint8{0xa0, 0x01, 0xa9, 0x99, 0x91, 0x50},
		RAM:     map[uint16]uint8{0x0050: 0x00, 0x0051: 0x04},
		Cycles:  10,
		Expect:  Expect{RAM: map[uint16]uint8{0x0401: 0x99}},
	},
	{
		Name:    "STA (indirect,X)",
		Program: []uint8{0xa2, 0x02, 0xa9, 0x44, 0x81, 0x60},
		RAM:     map[uint16]uint8{0x0062: 0x00, 0x0063: 0x05},
		Cycles:  10,
		Expect:  Expect{RAM: map[uint16]uint8{0x0500: 0x44}},
	},
	{
		Name:    "STX zero page",
		Program: []uint8{0xa2, 0xab, 0x86, 0x70},
		Cycles:  5,
		Expect:  Expect{RAM: map[uint16]uint8{0x0070: 0xab}},
	},
	{
		Name:    "STX zero page,Y",
		Program: []uint8{0xa2, 0x77, 0xa0, 0x01, 0x96, 0x30},
		Cycles:  8,
		Expect:  Expect{RAM: map[uint16]uint8{0x0031: 0x77}},
	},
	{
		Name:    "STX absolute",
		Program: []uint8{0xa2, 0x12, 0x8e, 0x00, 0x06},
		Cycles:  6,
		Expect:  Expect{RAM: map[uint16]uint8{0x0600: 0x12}},
	},
	{
		Name:    "STY zero page,X",
		Program: []uint8{0xa2, 0x03, 0xa0, 0xcd, 0x94, 0x70},
		Cycles:  8,
		Expect:  Expect{RAM: map[uint16]uint8{0x0073: 0xcd}},
	},
	{
		Name:    "STY absolute",
		Program: []uint8{0xa0, 0x99, 0x8c, 0x00, 0x02},
		Cycles:  6,
		Expect:  Expect{RAM: map[uint16]uint8{0x0200: 0x99}},
	},
	{
		Name:    "load after store",
		Program: []uint8{0xa9, 0x5a, 0x85, 0x10, 0xa6, 0x10},
		Cycles:  8,
		Expect:  Expect{X: v8(0x5a), RAM: map[uint16]uint8{0x0010: 0x5a}},
	},
	{
		Name:    "SEC SED CLC CLI",
		Program: []uint8{0x38, 0xf8, 0x18, 0x58},
		Cycles:  8,
		Expect:  Expect{PC: v16(0x0005), P: "..-.Di.c"},
	},
	{
		Name:    "SED CLD CLV SEI",
		Program: []uint8{0xf8, 0xd8, 0xb8, 0x78},
		Cycles:  8,
		Expect:  Expect{P: ".v-.dI.."},
	},
	{
		Name:    "NOP",
		Program: []uint8{0xea, 0xa9, 0x07},
		Cycles:  4,
		Expect:  Expect{A: v8(0x07), PC: v16(0x0004)},
	},
	{
		Name:        "program in cartridge",
		Description: "the program and its data are in the cartridge area",
		Origin:      memorymap.OriginCart,
		Program:     []uint8{0xa9, 0x01, 0xad, 0x00, 0x90},
		PRG:         map[uint16]uint8{0x9000: 0xab},
		Cycles:      6,
		Expect:      Expect{A: v8(0xab), PC: v16(0x8006), P: "S.-...z."},
	},
	{
		Name:    "null area reads zero",
		Program: []uint8{0xa9, 0x01, 0xad, 0x00, 0x30},
		Cycles:  6,
		Expect:  Expect{A: v8(0x00), P: "s.-...Z."},
	},
}
