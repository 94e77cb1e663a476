// route/codec.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"fmt"
	"io"

	"github.com/mmp/turnpath/util"
)

// ArchiveVersion should be incremented whenever the msgpack layout of the
// types in an Archive changes.
const ArchiveVersion = 1

// Archive holds a set of plans and the routes built from them, keyed by
// plan name. It's stored as zstd-compressed msgpack.
type Archive struct {
	Version int              `msgpack:"v"`
	Plans   []Plan           `msgpack:"p"`
	Routes  map[string]Route `msgpack:"r"`
}

func NewArchive() *Archive {
	return &Archive{Version: ArchiveVersion, Routes: make(map[string]Route)}
}

// Add records a plan and its route.
func (a *Archive) Add(p Plan, r Route) {
	a.Plans = append(a.Plans, p)
	a.Routes[p.Name] = r
}

func WriteArchive(w io.Writer, a *Archive) error {
	return util.WriteCompressedObject(w, a)
}

func ReadArchive(r io.Reader) (*Archive, error) {
	var a Archive
	if err := util.ReadCompressedObject(r, &a); err != nil {
		return nil, err
	}
	if a.Version != ArchiveVersion {
		return nil, fmt.Errorf("archive version %d: expected %d", a.Version, ArchiveVersion)
	}
	if a.Routes == nil {
		a.Routes = make(map[string]Route)
	}
	return &a, nil
}
