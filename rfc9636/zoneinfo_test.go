// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rfc9636

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testZone struct {
	offset int32
	isDST  bool
	abbr   string
}

// buildTZif returns a version 2 file whose 32-bit block is empty.
func buildTZif(zones []testZone, when []int64, idx []uint8, footer string) []byte {
	var b bytes.Buffer
	header := func(version byte, counts [6]uint32) {
		b.WriteString("TZif")
		b.WriteByte(version)
		b.Write(make([]byte, 15))
		for _, c := range counts {
			binary.Write(&b, binary.BigEndian, c)
		}
	}
	header('2', [6]uint32{})

	var abbrev []byte
	pos := make([]byte, len(zones))
	for i, z := range zones {
		pos[i] = byte(len(abbrev))
		abbrev = append(append(abbrev, z.abbr...), 0)
	}
	header('2', [6]uint32{0, 0, 0, uint32(len(when)), uint32(len(zones)), uint32(len(abbrev))})
	for _, w := range when {
		binary.Write(&b, binary.BigEndian, w)
	}
	b.Write(idx)
	for i, z := range zones {
		binary.Write(&b, binary.BigEndian, z.offset)
		if z.isDST {
			b.WriteByte(1)
		} else {
			b.WriteByte(0)
		}
		b.WriteByte(pos[i])
	}
	b.Write(abbrev)
	b.WriteString("\n" + footer + "\n")
	return b.Bytes()
}

func TestLoadLocationFromTZData(t *testing.T) {
	data := buildTZif(
		[]testZone{{-17762, false, "LMT"}, {-14400, true, "EDT"}, {-18000, false, "EST"}},
		[]int64{-2717650800, 9961200, 25682400},
		[]uint8{2, 1, 2},
		"EST5EDT,M3.2.0,M11.1.0",
	)
	l, err := LoadLocationFromTZData("Test/Zone", data)
	if err != nil {
		t.Fatalf("got %v, want nil", err)
	}
	if l.Name() != "Test/Zone" || l.Extend() != "EST5EDT,M3.2.0,M11.1.0" {
		t.Errorf("got name %q extend %q", l.Name(), l.Extend())
	}

	tx := l.Transitions()
	if len(tx) != 3 {
		t.Fatalf("got %d transitions, want 3", len(tx))
	}
	if tx[1] != (Transition{When: 9961200, Offset: -14400, IsDST: true, Abbrev: "EDT"}) {
		t.Errorf("got %+v", tx[1])
	}

	var tests = []struct {
		sec    int64
		offset int
		isDST  bool
	}{
		{-3000000000, -17762, false},
		{0, -18000, false},
		{9961200, -14400, true},
		{25682399, -14400, true},
		{1 << 40, -18000, false},
	}
	for _, tt := range tests {
		offset, isDST := l.Lookup(tt.sec)
		if offset != tt.offset || isDST != tt.isDST {
			t.Errorf("Lookup(%d): got %d %v, want %d %v", tt.sec, offset, isDST, tt.offset, tt.isDST)
		}
	}

	var dump strings.Builder
	l.Dump(&dump)
	if !strings.Contains(dump.String(), "Extend: EST5EDT,M3.2.0,M11.1.0") {
		t.Errorf("dump lacks the footer:\n%s", dump.String())
	}
}

func TestFixedZoneHasOneTransition(t *testing.T) {
	l, err := LoadLocationFromTZData("Etc/GMT-5", buildTZif([]testZone{{18000, false, "+05"}}, nil, nil, "<+05>-5"))
	if err != nil {
		t.Fatalf("got %v, want nil", err)
	}
	tx := l.Transitions()
	if len(tx) != 1 || tx[0].When != alpha || tx[0].Offset != 18000 {
		t.Errorf("got %+v", tx)
	}
	if offset, _ := l.Lookup(0); offset != 18000 {
		t.Errorf("got %d, want 18000", offset)
	}
}

func TestBadData(t *testing.T) {
	good := buildTZif([]testZone{{0, false, "UTC"}}, nil, nil, "UTC0")
	var tests = map[string][]byte{
		"empty":     nil,
		"magic":     append([]byte("TZxf"), good[4:]...),
		"truncated": good[:60],
		"no zones":  buildTZif(nil, nil, nil, "UTC0"),
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadLocationFromTZData(name, data); err != errBadData {
				t.Errorf("got %v, want errBadData", err)
			}
		})
	}
}

func TestLoadLocation(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Test"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := buildTZif([]testZone{{3600, false, "CET"}}, nil, nil, "CET-1")
	if err := os.WriteFile(filepath.Join(dir, "Test", "Zone"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := LoadLocation("Test/Zone", []string{filepath.Join(dir, "missing"), dir})
	if err != nil {
		t.Fatalf("got %v, want nil", err)
	}
	if l.Extend() != "CET-1" {
		t.Errorf("got %q", l.Extend())
	}

	if _, err := LoadLocation("Test/Nope", []string{dir}); err == nil || !strings.Contains(err.Error(), "unknown time zone") {
		t.Errorf("got %v, want unknown time zone", err)
	}
}
