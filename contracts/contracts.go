/*
Package contracts contains sources of the PoA contracts and provides access
to their compiled artifacts.

Artifacts of each contract are expected in the directory named after it
(e.g. poatoken/contract.nef and poatoken/manifest.json), which is the layout
produced by `neo-go contract compile` with the -o and -m flags.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	RegistryDir      = "registry"
	WhitelistDir     = "whitelist"
	ExchangeRatesDir = "exchangerates"
	FeeManagerDir    = "feemanager"
	PoATokenDir      = "poatoken"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract stored in the current package.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// Collaborators go first, PoA Token setup requires them to be registered.
	poaContracts = []string{
		RegistryDir,
		WhitelistDir,
		ExchangeRatesDir,
		FeeManagerDir,
		PoATokenDir,
	}
)

// Dirs returns directory names of all PoA contracts in the order they're
// supposed to be deployed.
func Dirs() []string {
	res := make([]string, len(poaContracts))
	copy(res, poaContracts)
	return res
}

// Read returns compiled PoA contracts stored in the given file system. They're
// returned in the order they're supposed to be deployed, see Dirs.
func Read(fsys fs.FS) ([]Contract, error) {
	return read(fsys, poaContracts)
}

func read(fsys fs.FS, dirs []string) ([]Contract, error) {
	res := make([]Contract, len(dirs))
	for i, dir := range dirs {
		var err error
		res[i], err = readContractFromDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("read %s contract: %w", dir, err)
		}
	}
	return res, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	bNEF, err := fs.ReadFile(fsys, path.Join(dir, nefName))
	if err != nil {
		return c, err
	}

	bManifest, err := fs.ReadFile(fsys, path.Join(dir, manifestName))
	if err != nil {
		return c, err
	}

	c.NEF, err = nef.FileFromBytes(bNEF)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, err)
	}

	if err = json.Unmarshal(bManifest, &c.Manifest); err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
