package entities

import (
	"errors"
	"strings"
)

var ErrUnknownBranch = errors.New("unknown branch")

// Branch is one of the regional divisions; each owns an occurrence tab.

type Branch string

const (
	BranchSP Branch = "SP"
	BranchPE Branch = "PE"
	BranchES Branch = "ES"
)

var Branches = []Branch{BranchSP, BranchPE, BranchES}

// ParseBranch accepts any casing; an empty value selects SP.
func ParseBranch(v string) (Branch, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v == "" {
		return BranchSP, nil
	}
	for _, b := range Branches {
		if string(b) == v {
			return b, nil
		}
	}
	return "", ErrUnknownBranch
}
