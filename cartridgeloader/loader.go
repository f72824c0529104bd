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
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
)

// FileExtensions recognised by the loader. Comparison is case insensitive.
var FileExtensions = [...]string{".NES"}

// FetchTimeout is the time allowed for a cartridge to be fetched over HTTP,
// including reading the body of the response.
var FetchTimeout = 30 * time.Second

// UnsupportedExtension is the pattern of the error returned by Load() for a
// filename without a recognised extension.
const UnsupportedExtension = "cartridgeloader: unsupported file extension (%s)"

// Loader names a cartridge file and holds its data once loaded.
type Loader struct {
	// a local filename or an http or https URL
	Filename string

	// expected SHA1 hash of the data in hex. an empty string means the hash
	// is not checked. Load() sets the hash of the loaded data
	Hash string

	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename without the path and extension.
func (cl Loader) ShortName() string {
	return strings.TrimSuffix(path.Base(cl.Filename), path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

func recognised(filename string) bool {
	ext := path.Ext(filename)
	for _, e := range FileExtensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Load the data from the file or URL. Calling Load() again once the data has
// been loaded does nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	var scheme string
	var name = cl.Filename
	if u, err := url.Parse(cl.Filename); err == nil {
		scheme = u.Scheme
		if u.Path != "" {
			name = u.Path
		}
	}

	if !recognised(name) {
		return curated.Errorf(UnsupportedExtension, path.Ext(name))
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(cl.Filename)
	case "file", "":
		data, err = os.ReadFile(name)
	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	sum := sha1.Sum(data)
	hash := hex.EncodeToString(sum[:])
	if cl.Hash != "" && !strings.EqualFold(cl.Hash, hash) {
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unexpected hash value (%s)", hash))
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

func fetch(url string) ([]byte, error) {
	client := http.Client{Timeout: FetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// ROM parses the loaded data as an iNES file.
func (cl Loader) ROM() (cartridge.ROM, error) {
	if !cl.HasLoaded() {
		return cartridge.ROM{}, curated.Errorf("cartridgeloader: %v", "no data loaded")
	}
	return ParseINES(cl.Data, cl.ShortName())
}
