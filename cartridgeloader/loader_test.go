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

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/sat6502/cartridgeloader"
	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/test"
)

func ines(prg, chr int, flags6, flags7 byte) []byte {
	d := []byte{'N', 'E', 'S', 0x1a, byte(prg), byte(chr), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	d = append(d, make([]byte, prg*16384+chr*8192)...)
	return d
}

func TestParse(t *testing.T) {
	d := ines(1, 1, 0x00, 0x00)
	d[16] = 0xa9
	d[16+0x3ffd] = 0x80

	rom, err := cartridgeloader.ParseINES(d, "test")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Size(), 16384)
	test.ExpectEquality(t, rom.Mapper(), 0)
	test.ExpectEquality(t, rom.Read(0), uint8(0xa9))
	test.ExpectEquality(t, rom.Read(0x3ffd), uint8(0x80))
	test.ExpectEquality(t, rom.Name(), "test")

	rom, err = cartridgeloader.ParseINES(ines(2, 0, 0x10, 0x40), "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Size(), 32768)
	test.ExpectEquality(t, rom.Mapper(), 0x41)
}

func TestRejection(t *testing.T) {
	expectHeader := func(d []byte, tag string) {
		t.Helper()
		_, err := cartridgeloader.ParseINES(d, "")
		test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedHeader), tag)
	}

	d := ines(1, 0, 0, 0)
	d[0] = 'M'
	expectHeader(d, "magic")

	expectHeader(ines(1, 0, 0, 0x08), "nes 2.0")
	expectHeader(ines(1, 0, 0x04, 0), "trainer")
	expectHeader(ines(0, 1, 0, 0), "no prg")

	d = ines(1, 0, 0, 0)
	d[12] = 0x01
	expectHeader(d, "reserved")

	d = ines(1, 0, 0, 0)
	copy(d[7:], "DiskDude!")
	_, err := cartridgeloader.ParseINES(d, "")
	test.ExpectSuccess(t, curated.Has(err, cartridgeloader.UnsupportedHeader))
	test.ExpectSuccess(t, err != nil && err.Error() == "cartridgeloader: unsupported header (DiskDude! signature)")

	_, err = cartridgeloader.ParseINES(ines(1, 0, 0, 0)[:100], "")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.TruncatedData))

	_, err = cartridgeloader.ParseINES(ines(1, 1, 0, 0)[:16400], "")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.TruncatedData))

	_, err = cartridgeloader.ParseINES([]byte("NES"), "")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.TruncatedData))
}

func TestLoader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.nes")
	test.DemandSuccess(t, os.WriteFile(fn, ines(1, 0, 0, 0), 0o644))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.ShortName(), "program")

	_, err := cl.ROM()
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Hash), 40)

	rom, err := cl.ROM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Name(), "program")

	// hash is checked
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectFailure(t, cl.Load())
}

func TestExtension(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, ines(1, 0, 0, 0), 0o644))

	cl := cartridgeloader.NewLoader(fn)
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedExtension))

	// extensions are not case sensitive
	fn = filepath.Join(t.TempDir(), "program.NeS")
	test.DemandSuccess(t, os.WriteFile(fn, ines(1, 0, 0, 0), 0o644))
	cl = cartridgeloader.NewLoader(fn)
	test.ExpectSuccess(t, cl.Load())
}

func TestHTTP(t *testing.T) {
	data := ines(2, 0, 0, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roms/program.nes" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/roms/program.nes")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, cl.ShortName(), "program")

	rom, err := cl.ROM()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Size(), 32768)

	cl = cartridgeloader.NewLoader(srv.URL + "/roms/missing.nes")
	test.ExpectFailure(t, cl.Load())
}

func TestHTTPTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	timeout := cartridgeloader.FetchTimeout
	cartridgeloader.FetchTimeout = 50 * time.Millisecond
	defer func() { cartridgeloader.FetchTimeout = timeout }()

	start := time.Now()
	cl := cartridgeloader.NewLoader(srv.URL + "/roms/program.nes")
	test.ExpectFailure(t, cl.Load())
	test.ExpectSuccess(t, time.Since(start) < 5*time.Second)
	test.ExpectFailure(t, cl.HasLoaded())
}
