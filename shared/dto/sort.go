package dto

import "strings"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type Sort struct {
	By  string
	Dir string
}

func SortDesc(column string) Sort {
	return Sort{By: column, Dir: SortDirDesc}
}

func SortAsc(column string) Sort {
	return Sort{By: column, Dir: SortDirAsc}
}

// String renders the ORDER BY term. An unknown direction falls back to ASC.
func (s Sort) String() string {
	dir := strings.ToUpper(s.Dir)
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	return s.By + " " + dir
}
