// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles holds the formatting of curves
type Styles []plt.Fmt

// GetDefaultStyles returns styles for the curves of a sequence of output times
func GetDefaultStyles(times []float64) Styles {
	colors := []string{"b", "r", "g", "m", "c", "k"}
	sty := make([]plt.Fmt, len(times))
	for i, t := range times {
		sty[i].C = colors[i%len(colors)]
		sty[i].L = io.Sf("t=%g", t)
	}
	return sty
}

// GetTexLabel returns a TeX label for a column key; e.g. "p0" => "$p_{0}$"
func GetTexLabel(key, unit string) string {
	l := "$"
	switch {
	case key == "t" || key == "time":
		l += "t"
	case key == "z":
		l += "z"
	case strings.HasPrefix(key, "d2seff"):
		idx := strings.Split(strings.TrimPrefix(key, "d2seff"), "d")
		if len(idx) == 3 {
			l += io.Sf("\\partial^2 s_{%s} / \\partial p_{%s} \\partial p_{%s}", idx[0], idx[1], idx[2])
		} else {
			l += key
		}
	case strings.HasPrefix(key, "dseff"):
		idx := strings.Split(strings.TrimPrefix(key, "dseff"), "d")
		if len(idx) == 2 {
			l += io.Sf("\\partial s_{%s} / \\partial p_{%s}", idx[0], idx[1])
		} else {
			l += key
		}
	case strings.HasPrefix(key, "seff"):
		l += io.Sf("s_{%s}", strings.TrimPrefix(key, "seff"))
	case strings.HasPrefix(key, "flux"):
		l += io.Sf("w_{%s}", strings.TrimPrefix(key, "flux"))
	case strings.HasPrefix(key, "p"):
		l += io.Sf("p_{%s}", strings.TrimPrefix(key, "p"))
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
