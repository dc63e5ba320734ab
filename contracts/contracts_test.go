package contracts

import (
	"encoding/json"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	_fs := fstest.MapFS{}
	for i, dir := range poaContracts {
		_, bNEF := anyValidNEF(t, byte(i))
		_, bManifest := anyValidManifest(t, dir)
		_fs[dir+"/"+nefName] = &fstest.MapFile{Data: bNEF}
		_fs[dir+"/"+manifestName] = &fstest.MapFile{Data: bManifest}
	}

	cs, err := Read(_fs)
	require.NoError(t, err)
	require.Len(t, cs, len(poaContracts))
	for i := range cs {
		require.Equal(t, poaContracts[i], cs[i].Manifest.Name)
		require.Equal(t, byte(i), cs[i].NEF.Script[0])
	}
}

func TestDirs(t *testing.T) {
	dirs := Dirs()
	require.Equal(t, poaContracts, dirs)
	require.Equal(t, PoATokenDir, dirs[len(dirs)-1])

	dirs[0] = "changed"
	require.Equal(t, RegistryDir, Dirs()[0])
}

func TestReadMissingFiles(t *testing.T) {
	fsys := fstest.MapFS{}

	_, err := Read(fsys)
	require.ErrorIs(t, err, fs.ErrNotExist)

	fsys[RegistryDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(fsys)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorContains(t, err, manifestName)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = PoATokenDir + "/" + nefName
		manifestPath = PoATokenDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t, 0)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := read(_fs, []string{PoATokenDir})
	require.NoError(t, err)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = read(_fs, []string{PoATokenDir})
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = read(_fs, []string{PoATokenDir})
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB, first byte) (nef.File, []byte) {
	script := make([]byte, 32)
	script[0] = first

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
