//go:build alloc_debug

package main

func init() {
	allocDebug = true
}
