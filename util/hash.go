// util/hash.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

func Hash(r io.Reader) ([]byte, error) {
	hash := sha256.New()
	_, err := io.Copy(hash, r)
	if err != nil {
		return nil, err
	}
	return hash.Sum(nil), nil
}

// HashObject returns a hex-encoded hash of obj's msgpack encoding;
// objects with equal encodings give the same hash.
func HashObject(obj any) (string, error) {
	b, err := msgpack.Marshal(obj)
	if err != nil {
		return "", err
	}
	h, err := Hash(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h), nil
}
