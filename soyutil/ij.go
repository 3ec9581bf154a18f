package soyutil

import "sync"

var (
	ijMu   sync.RWMutex
	ijData SoyMapData
)

// SetIjData installs the injected-data map referenced by $ij paths in
// templates. It applies process wide.
func SetIjData(data SoyMapData) {
	ijMu.Lock()
	ijData = data
	ijMu.Unlock()
}

// GetIjData resolves a dotted path against the injected-data map. Null if
// no injected data has been set.
func GetIjData(key string) SoyData {
	ijMu.RLock()
	d := ijData
	ijMu.RUnlock()
	if d == nil {
		return NilDataInstance
	}
	return GetData(d, key)
}
