package exchange

import (
	"github.com/metacrowd/exchange-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

var configPrefix = []byte("config")

type record struct {
	key []byte
	val int
}

// Config returns configuration value stored by key, 0 if it is not set.
func Config(key string) int {
	return getConfig(storage.GetReadOnlyContext(), key)
}

// SetConfig stores non-negative configuration value. It can be invoked only
// by committee.
func SetConfig(key string, val int) {
	common.CheckCommitteeWitness()
	if len(key) == 0 || val < 0 {
		common.Abort(common.ErrInvalidArgument, "invalid config record")
	}

	setConfig(storage.GetContext(), key, val)

	runtime.Log("configuration has been updated")
}

// ListConfig returns an array of structures that contain key and value of all
// configuration records.
func ListConfig() []record {
	ctx := storage.GetReadOnlyContext()

	var config []record

	it := storage.Find(ctx, configPrefix, storage.RemovePrefix)
	for iterator.Next(it) {
		pair := iterator.Value(it).(struct {
			key []byte
			val []byte
		})
		config = append(config, record{key: pair.key, val: convert.ToInteger(pair.val)})
	}

	return config
}

func getConfig(ctx storage.Context, key string) int {
	val := storage.Get(ctx, append(configPrefix, []byte(key)...))
	if val == nil {
		return 0
	}

	return val.(int)
}

func setConfig(ctx storage.Context, key string, val int) {
	storage.Put(ctx, append(configPrefix, []byte(key)...), val)
}
