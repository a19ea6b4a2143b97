/*
Package contracts reads compiled exchange contract files.

Compilation puts contract.nef and manifest.json into the contract source
directory, e.g.

	neo-go contract compile -i contracts/exchange -c contracts/exchange/config.yml \
		-o contracts/exchange/contract.nef -m contracts/exchange/manifest.json
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	// ExchangeDir is a directory of the exchange contract relative to the
	// repository root.
	ExchangeDir = "contracts/exchange"

	// ExchangeName is a manifest name of the exchange contract.
	ExchangeName = "Exchange"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
	errUnexpectedName  = errors.New("unexpected contract name")
)

// ReadExchange reads compiled exchange contract from the directory on disk.
func ReadExchange(dir string) (Contract, error) {
	c, err := Read(os.DirFS(dir), ".")
	if err != nil {
		return c, fmt.Errorf("read contract from %s: %w", dir, err)
	}

	if c.Manifest.Name != ExchangeName {
		return c, fmt.Errorf("%w: %q", errUnexpectedName, c.Manifest.Name)
	}

	return c, nil
}

// Read reads NEF and manifest of the contract from the dir of the fsys.
func Read(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS always uses "/", so filepath.Join() is not applicable.
	fNEF, err := fsys.Open(path.Join(dir, nefName))
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(path.Join(dir, manifestName))
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
