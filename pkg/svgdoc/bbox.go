package svgdoc

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// BBox is an axis-aligned bounding box in the element's local coordinate
// space, estimated from attributes alone (no transform resolution).
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Area returns width × height.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Bounds estimates the bounding box of a graphical element from its
// attributes. Elements with missing or unparseable geometry get a zero box.
//
// rect, circle and ellipse are exact. polygon uses the hull of its points
// list. path uses the hull of every coordinate in its data, control points
// included, which overestimates curves slightly. The classifier only needs
// the area for an order-of-magnitude threshold, so this is close enough.
func Bounds(n *html.Node) BBox {
	switch n.Data {
	case "rect":
		return BBox{
			X:      attrFloat(n, "x"),
			Y:      attrFloat(n, "y"),
			Width:  attrFloat(n, "width"),
			Height: attrFloat(n, "height"),
		}
	case "circle":
		r := attrFloat(n, "r")
		return BBox{
			X:      attrFloat(n, "cx") - r,
			Y:      attrFloat(n, "cy") - r,
			Width:  2 * r,
			Height: 2 * r,
		}
	case "ellipse":
		rx := attrFloat(n, "rx")
		ry := attrFloat(n, "ry")
		return BBox{
			X:      attrFloat(n, "cx") - rx,
			Y:      attrFloat(n, "cy") - ry,
			Width:  2 * rx,
			Height: 2 * ry,
		}
	case "polygon":
		return hull(polygonPoints(AttrOr(n, "points", "")))
	case "path":
		return hull(pathPoints(AttrOr(n, "d", "")))
	}
	return BBox{}
}

// attrFloat parses a numeric attribute, returning 0 for absent or
// non-numeric values. Unit suffixes (px) are tolerated.
func attrFloat(n *html.Node, name string) float64 {
	v, ok := Attr(n, name)
	if !ok {
		return 0
	}
	f, err := ParseLength(v)
	if err != nil {
		return 0
	}
	return f
}

// ParseLength parses an SVG length value, stripping a trailing "px" unit.
func ParseLength(v string) (float64, error) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	return strconv.ParseFloat(v, 64)
}

type point struct{ x, y float64 }

// hull returns the bounding box of a point set, or a zero box for fewer
// than two points.
func hull(pts []point) BBox {
	if len(pts) < 2 {
		return BBox{}
	}
	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// polygonPoints parses a polygon "points" attribute into coordinate pairs.
func polygonPoints(points string) []point {
	nums := numberPattern.FindAllString(points, -1)
	pts := make([]point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		x, err1 := strconv.ParseFloat(nums[i], 64)
		y, err2 := strconv.ParseFloat(nums[i+1], 64)
		if err1 != nil || err2 != nil {
			return nil
		}
		pts = append(pts, point{x, y})
	}
	return pts
}

// pathToken matches either a path command letter or a number. Numbers may
// be glued together with signs ("10-5") or exponent notation, which the
// pattern splits correctly.
var (
	pathToken     = regexp.MustCompile(`[MmLlHhVvCcSsQqTtAaZz]|-?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	numberPattern = regexp.MustCompile(`-?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

// argCount maps an upper-cased path command to its per-repetition argument
// count. Commands repeat their argument group implicitly.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

// pathPoints extracts every absolute coordinate touched by a path's data:
// endpoints and curve control points. Arc radii and flags are skipped, only
// the arc endpoint contributes. Malformed data yields whatever prefix
// parsed cleanly.
func pathPoints(d string) []point {
	tokens := pathToken.FindAllString(d, -1)

	var (
		pts        []point
		cur, start point
		cmd        byte
	)

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if !isNumber(tok) {
			cmd = tok[0]
			i++
			if upper(cmd) == 'Z' {
				cur = start
				continue
			}
		}
		if cmd == 0 {
			return pts // data before any command
		}

		n := argCount[upper(cmd)]
		if n == 0 || i+n > len(tokens) {
			return pts
		}
		args := make([]float64, n)
		for j := 0; j < n; j++ {
			f, err := strconv.ParseFloat(tokens[i+j], 64)
			if err != nil {
				return pts
			}
			args[j] = f
		}
		i += n

		rel := cmd >= 'a' && cmd <= 'z'
		switch upper(cmd) {
		case 'M', 'L', 'T':
			cur = absPoint(args[0], args[1], cur, rel)
			pts = append(pts, cur)
			if upper(cmd) == 'M' {
				start = cur
				// Subsequent implicit pairs are lineto.
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			}
		case 'H':
			if rel {
				cur.x += args[0]
			} else {
				cur.x = args[0]
			}
			pts = append(pts, cur)
		case 'V':
			if rel {
				cur.y += args[0]
			} else {
				cur.y = args[0]
			}
			pts = append(pts, cur)
		case 'C', 'S', 'Q':
			for j := 0; j+1 < n; j += 2 {
				p := absPoint(args[j], args[j+1], cur, rel)
				pts = append(pts, p)
				if j+2 == n {
					cur = p
				}
			}
		case 'A':
			cur = absPoint(args[5], args[6], cur, rel)
			pts = append(pts, cur)
		}
	}
	return pts
}

func absPoint(x, y float64, cur point, rel bool) point {
	if rel {
		return point{cur.x + x, cur.y + y}
	}
	return point{x, y}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
