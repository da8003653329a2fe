package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	orthoroute "github.com/kungfusheep/orthoroute"
	"github.com/kungfusheep/orthoroute/core"
	"github.com/kungfusheep/orthoroute/path"
)

// maxGridDim caps the terminal grid's width/height; client areas wider or
// taller than this are scaled down to fit.
const maxGridDim = 120

// scene is the JSON input format: a client area, a list of obstacle
// rectangles, and a list of paths to route, each with two endpoints and
// optional bend points.
type scene struct {
	ClientArea core.Rectangle     `json:"clientArea"`
	Spacing    int                `json:"spacing"`
	Obstacles  []core.Rectangle   `json:"obstacles"`
	Paths      []scenePath        `json:"paths"`
}

type scenePath struct {
	Start      core.Point   `json:"start"`
	End        core.Point   `json:"end"`
	Bendpoints []core.Point `json:"bendpoints,omitempty"`
}

func main() {
	var (
		inputFile = flag.String("i", "", "Input scene file path (JSON)")
		output    = flag.String("o", "", "Output file path (default: stdout)")
	)

	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input scene file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	content, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var sc scene
	if err := json.Unmarshal(content, &sc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scene: %v\n", err)
		os.Exit(1)
	}

	router := orthoroute.NewRouter()
	router.SetClientArea(sc.ClientArea)
	if sc.Spacing > 0 {
		router.SetSpacing(sc.Spacing)
	}
	for _, ob := range sc.Obstacles {
		router.AddObstacle(ob)
	}
	for _, p := range sc.Paths {
		if _, err := router.AddPath(p.Start, p.End, p.Bendpoints); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding path %v->%v: %v\n", p.Start, p.End, err)
			os.Exit(1)
		}
	}

	solved, err := router.Solve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving scene: %v\n", err)
		os.Exit(1)
	}

	rendering := renderASCII(sc.ClientArea, sc.Obstacles, solved)

	if *output != "" {
		if err := ioutil.WriteFile(*output, []byte(rendering), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully rendered routed scene to %s\n", *output)
	} else {
		fmt.Println(rendering)
	}
}

// renderASCII draws obstacles and routed polylines onto a character grid
// scaled so the client area fits within maxGridDim columns and rows.
func renderASCII(area core.Rectangle, obstacles []core.Rectangle, paths []*path.OrthogonalPath) string {
	if area.Width <= 0 || area.Height <= 0 {
		return ""
	}

	scaleX := 1
	if area.Width > maxGridDim {
		scaleX = (area.Width + maxGridDim - 1) / maxGridDim
	}
	scaleY := 1
	if area.Height > maxGridDim {
		scaleY = (area.Height + maxGridDim - 1) / maxGridDim
	}

	cols := area.Width/scaleX + 1
	rows := area.Height/scaleY + 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	cell := func(p core.Point) (int, int, bool) {
		gx := (p.X - area.X) / scaleX
		gy := (p.Y - area.Y) / scaleY
		if gx < 0 || gx >= cols || gy < 0 || gy >= rows {
			return 0, 0, false
		}
		return gx, gy, true
	}

	for _, ob := range obstacles {
		for y := ob.Top(); y < ob.Bottom(); y += scaleY {
			for x := ob.Left(); x < ob.Right(); x += scaleX {
				if gx, gy, ok := cell(core.Point{X: x, Y: y}); ok {
					grid[gy][gx] = '█'
				}
			}
		}
	}

	for _, p := range paths {
		drawPolyline(grid, p.Points, cell)
	}

	var result strings.Builder
	for _, row := range grid {
		result.WriteString(string(row))
		result.WriteByte('\n')
	}
	return result.String()
}

// drawPolyline marks every point along each orthogonal segment of pts with
// '*', overwriting obstacle cells it legitimately routes through the gap of.
func drawPolyline(grid [][]rune, pts []core.Point, cell func(core.Point) (int, int, bool)) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a.X == b.X {
			step := 1
			if b.Y < a.Y {
				step = -1
			}
			for y := a.Y; ; y += step {
				if gx, gy, ok := cell(core.Point{X: a.X, Y: y}); ok {
					grid[gy][gx] = '*'
				}
				if y == b.Y {
					break
				}
			}
		} else {
			step := 1
			if b.X < a.X {
				step = -1
			}
			for x := a.X; ; x += step {
				if gx, gy, ok := cell(core.Point{X: x, Y: a.Y}); ok {
					grid[gy][gx] = '*'
				}
				if x == b.X {
					break
				}
			}
		}
	}
}
