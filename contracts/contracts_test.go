package contracts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

const testDir = "exchange"

func TestReadMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := Read(_fs, testDir)
	require.Error(t, err)

	// Missing manifest.
	_fs[testDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(_fs, testDir)
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = testDir + "/" + nefName
		manifestPath = testDir + "/" + manifestName
	)

	expNEF, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, ExchangeName)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	c, err := Read(_fs, testDir)
	require.NoError(t, err)
	require.Equal(t, expNEF.Checksum, c.NEF.Checksum)
	require.Equal(t, ExchangeName, c.Manifest.Name)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = Read(_fs, testDir)
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = Read(_fs, testDir)
	require.ErrorIs(t, err, errInvalidManifest)
}

func TestReadExchange(t *testing.T) {
	writeContract := func(t *testing.T, name string) string {
		dir := t.TempDir()
		_, bNEF := anyValidNEF(t)
		_, bManifest := anyValidManifest(t, name)

		require.NoError(t, os.WriteFile(filepath.Join(dir, nefName), bNEF, 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, manifestName), bManifest, 0o600))

		return dir
	}

	t.Run("valid", func(t *testing.T) {
		c, err := ReadExchange(writeContract(t, ExchangeName))
		require.NoError(t, err)
		require.Equal(t, ExchangeName, c.Manifest.Name)
	})

	t.Run("other contract", func(t *testing.T) {
		_, err := ReadExchange(writeContract(t, "NameService"))
		require.ErrorIs(t, err, errUnexpectedName)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadExchange(t.TempDir())
		require.Error(t, err)
	})
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

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
