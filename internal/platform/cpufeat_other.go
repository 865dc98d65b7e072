//go:build !amd64 && !386 && !arm64

package platform

func nativeAtomics() bool { return false }
