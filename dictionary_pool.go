// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzw

import "sync"

// dictionaryPool reuses dictionary instances (and their backing map) across
// short-lived Encode calls, the way sliding_window_pool.go pooled
// slidingWindowDict across Compress calls.
var dictionaryPool = sync.Pool{
	New: func() any {
		return newDictionary()
	},
}

// acquireDictionary acquires a cleared dictionary from the pool.
func acquireDictionary() *dictionary {
	d := dictionaryPool.Get().(*dictionary)
	d.reset()
	return d
}

// releaseDictionary returns a dictionary to the pool.
func releaseDictionary(d *dictionary) {
	if d == nil {
		return
	}
	dictionaryPool.Put(d)
}
