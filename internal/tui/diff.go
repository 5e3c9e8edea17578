package tui

import (
	"strings"

	"github.com/1broseidon/displayconf/internal/config"
)

type diffKind int

const (
	diffContext diffKind = iota
	diffRemoved
	diffAdded
)

type diffLine struct {
	kind diffKind
	text string
}

// configDiff compares the encoded forms of two configs line by line. It
// returns nil when they encode identically.
func configDiff(original, current config.DisplayConfig) ([]diffLine, error) {
	origBytes, err := config.Encode(original)
	if err != nil {
		return nil, err
	}
	currBytes, err := config.Encode(current)
	if err != nil {
		return nil, err
	}

	origStr := strings.TrimSpace(string(origBytes))
	currStr := strings.TrimSpace(string(currBytes))
	if origStr == currStr {
		return nil, nil
	}
	return lcsDiff(strings.Split(origStr, "\n"), strings.Split(currStr, "\n")), nil
}

// lcsDiff diffs two line slices by longest common subsequence. A config has
// a dozen keys, so the quadratic table stays small.
func lcsDiff(a, b []string) []diffLine {
	m, n := len(a), len(b)

	tbl := make([][]int, m+1)
	for i := range tbl {
		tbl[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				tbl[i][j] = tbl[i+1][j+1] + 1
			case tbl[i+1][j] >= tbl[i][j+1]:
				tbl[i][j] = tbl[i+1][j]
			default:
				tbl[i][j] = tbl[i][j+1]
			}
		}
	}

	var out []diffLine
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			out = append(out, diffLine{kind: diffContext, text: a[i]})
			i++
			j++
		case tbl[i+1][j] >= tbl[i][j+1]:
			out = append(out, diffLine{kind: diffRemoved, text: a[i]})
			i++
		default:
			out = append(out, diffLine{kind: diffAdded, text: b[j]})
			j++
		}
	}
	for ; i < m; i++ {
		out = append(out, diffLine{kind: diffRemoved, text: a[i]})
	}
	for ; j < n; j++ {
		out = append(out, diffLine{kind: diffAdded, text: b[j]})
	}
	return out
}
