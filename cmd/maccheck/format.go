package main

import "github.com/thediveo/enumflag/v2"

type format enumflag.Flag

const (
	formatText format = iota
	formatJSON
)

var formatIDs = map[format][]string{
	formatText: {"text"},
	formatJSON: {"json"},
}

func newFormatFlag(f *format) *enumflag.EnumFlagValue[format] {
	return enumflag.New(f, "format", formatIDs, enumflag.EnumCaseInsensitive)
}
