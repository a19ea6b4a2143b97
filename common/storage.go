package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// keySeparator divides numeric parts of composite keys. Numbers are encoded
// as decimal strings, so the separator keeps `1:12` and `11:2` apart.
const keySeparator = ":"

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetSerialized returns deserialized value stored by key or nil if there is
// no such key.
func GetSerialized(ctx storage.Context, key any) any {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}

	return std.Deserialize(data.([]byte))
}

// IDKey returns storage key of the entity with numeric id under the prefix.
func IDKey(prefix byte, id int) []byte {
	return append([]byte{prefix}, []byte(std.Itoa10(id)+keySeparator)...)
}

// IndexKey returns storage key of the index-th element of the entity with
// numeric id under the prefix.
func IndexKey(prefix byte, id, index int) []byte {
	return append(IDKey(prefix, id), []byte(std.Itoa10(index))...)
}

// OwnerKey returns storage key of the entity id listed under the owner.
// All keys of the same owner share the `prefix+owner` prefix, so they can be
// iterated with storage.Find.
func OwnerKey(prefix byte, owner []byte, id int) []byte {
	key := append([]byte{prefix}, owner...)
	return append(key, []byte(std.Itoa10(id))...)
}

// NextID increments counter stored by key and returns its new value. The
// first returned value is 1.
func NextID(ctx storage.Context, key any) int {
	id := 1
	data := storage.Get(ctx, key)
	if data != nil {
		id = data.(int) + 1
	}

	storage.Put(ctx, key, id)

	return id
}
