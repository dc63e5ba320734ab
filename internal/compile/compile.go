// Package compile builds PoA contracts from their sources.
package compile

import (
	"fmt"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/poa-contract/contracts"
)

// ConfigName is the name of the contract configuration file expected in
// every contract directory.
const ConfigName = "config.yml"

// Contract compiles contract located in ctrPath and returns it's NEF and
// manifest built from the config.yml of the same directory.
func Contract(ctrPath string) (contracts.Contract, error) {
	var res contracts.Contract

	ne, di, err := compiler.CompileWithOptions(ctrPath, nil, nil)
	if err != nil {
		return res, fmt.Errorf("compile %s: %w", ctrPath, err)
	}

	conf, err := smartcontract.ParseContractConfig(filepath.Join(ctrPath, ConfigName))
	if err != nil {
		return res, fmt.Errorf("parse contract config: %w", err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods
	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return res, fmt.Errorf("create manifest: %w", err)
	}

	res.NEF = *ne
	res.Manifest = *m
	return res, nil
}

// All compiles every PoA contract found in the given root directory (usually
// the "contracts" directory of this repository). Contracts are returned in
// deployment order, see contracts.Dirs.
func All(root string) ([]contracts.Contract, error) {
	dirs := contracts.Dirs()
	res := make([]contracts.Contract, 0, len(dirs))

	for _, dir := range dirs {
		c, err := Contract(filepath.Join(root, dir))
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, nil
}
