package main

import (
	"strconv"

	"offset_registry/sdk"
)

// getCount reads a state counter, missing keys count as zero.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextID bumps the counter and returns the fresh value, so ids start at 1
// and stay dense. Entities are never deleted, which lets reads iterate
// 1..count instead of keeping separate index blobs.
func nextID(key string) uint64 {
	n := getCount(key) + 1
	setCount(key, n)
	return n
}
