package gridio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/huttarl/slitherlink3D/gridio"
)

const cubeJSON = `{
  "gridId": "cube",
  "gridName": "Cube",
  "vertices": [[-1,-1,-1],[1,-1,-1],[1,1,-1],[-1,1,-1],[-1,-1,1],[1,-1,1],[1,1,1],[-1,1,1]],
  "faces": [[0,1,2,3],[4,7,6,5],[0,1,5,4],[1,2,6,5],[2,3,7,6],[3,0,4,7]]
}`

// TestDecodeGrid_Cube loads a cube and builds its topology.
func TestDecodeGrid_Cube(t *testing.T) {
	g, err := gridio.DecodeGrid(strings.NewReader(cubeJSON))
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if g.GridID != "cube" || g.GridName != "Cube" {
		t.Errorf("IDs = %q/%q; want cube/Cube", g.GridID, g.GridName)
	}
	topo, err := g.BuildTopology()
	if err != nil {
		t.Fatalf("BuildTopology error: %v", err)
	}
	if topo.VertexCount() != 8 || topo.EdgeCount() != 12 || topo.FaceCount() != 6 {
		t.Errorf("V/E/F = %d/%d/%d; want 8/12/6",
			topo.VertexCount(), topo.EdgeCount(), topo.FaceCount())
	}
}

// TestDecodeGrid_Errors verifies structural rejection with the specific
// sentinel for each defect. Several defects may be reported at once.
func TestDecodeGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"BadJSON", `{"gridId":`, gridio.ErrBadJSON},
		{"MissingID", `{"gridName":"x","vertices":[[0,0,0],[1,0,0],[0,1,0],[0,0,1]],"faces":[[0,1,2],[0,1,3],[0,2,3],[1,2,3]]}`, gridio.ErrMissingField},
		{"TooFewVertices", `{"gridId":"x","gridName":"x","vertices":[[0,0,0]],"faces":[[0,1,2],[0,1,3],[0,2,3],[1,2,3]]}`, gridio.ErrTooFewVertices},
		{"TooFewFaces", `{"gridId":"x","gridName":"x","vertices":[[0,0,0],[1,0,0],[0,1,0],[0,0,1]],"faces":[[0,1,2]]}`, gridio.ErrTooFewFaces},
		{"FaceTooSmall", `{"gridId":"x","gridName":"x","vertices":[[0,0,0],[1,0,0],[0,1,0],[0,0,1]],"faces":[[0,1],[0,1,3],[0,2,3],[1,2,3]]}`, gridio.ErrFaceTooSmall},
		{"VertexIndex", `{"gridId":"x","gridName":"x","vertices":[[0,0,0],[1,0,0],[0,1,0],[0,0,1]],"faces":[[0,1,9],[0,1,3],[0,2,3],[1,2,3]]}`, gridio.ErrVertexIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridio.DecodeGrid(strings.NewReader(tc.in))
			if !errors.Is(err, tc.err) {
				t.Errorf("DecodeGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestGrid_Normalize centers and unit-scales vertex positions.
func TestGrid_Normalize(t *testing.T) {
	g := &gridio.Grid{Vertices: [][3]float64{{2, 0, 0}, {4, 0, 0}, {2, 2, 0}, {4, 2, 0}}}
	g.Normalize()
	// Centroid moved to origin.
	var cx, cy, cz float64
	maxDist := 0.0
	for _, v := range g.Vertices {
		cx += v[0]
		cy += v[1]
		cz += v[2]
		d := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
		if d > maxDist {
			maxDist = d
		}
	}
	if cx != 0 || cy != 0 || cz != 0 {
		t.Errorf("centroid = (%v,%v,%v); want origin", cx, cy, cz)
	}
	if diff := maxDist - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("max squared distance = %v; want 1", maxDist)
	}
}

// TestDecodePuzzles covers shape validation and the clue conversion.
func TestDecodePuzzles(t *testing.T) {
	in := `{"gridId":"cube","puzzles":[{"clues":[2,-1,0],"solution":[4,5,6,7]}]}`
	p, err := gridio.DecodePuzzles(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePuzzles error: %v", err)
	}
	set := p.Set()
	if set.GridID != "cube" || len(set.Puzzles) != 1 {
		t.Fatalf("Set = %q/%d puzzles; want cube/1", set.GridID, len(set.Puzzles))
	}
	clues := set.Puzzles[0].Clues
	if clues[0] != 2 || !clues[1].None() || clues[2] != 0 {
		t.Errorf("clues = %v; want [2 NoClue 0]", clues)
	}
	if got := set.Puzzles[0].Solution; len(got) != 4 || got[0] != 4 {
		t.Errorf("solution = %v; want [4 5 6 7]", got)
	}

	if _, err := gridio.DecodePuzzles(strings.NewReader(`{"gridId":"","puzzles":[]}`)); !errors.Is(err, gridio.ErrNoPuzzles) {
		t.Errorf("empty file error = %v; want ErrNoPuzzles", err)
	}

	// -1 is the only legal negative; anything lower is malformed.
	bad := `{"gridId":"cube","puzzles":[{"clues":[2,-5,0],"solution":[4,5,6,7]}]}`
	if _, err := gridio.DecodePuzzles(strings.NewReader(bad)); !errors.Is(err, gridio.ErrBadClue) {
		t.Errorf("negative clue error = %v; want ErrBadClue", err)
	}
}

const cubeOBJ = `# polyHedronisme export
o C
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3 4
f 5 8 7 6
f 1 2 6 5
f 2 3 7 6
f 3 4 8 7
f 4 1 5 8
`

// TestConvertOBJ_Cube converts a cube export and checks it builds.
func TestConvertOBJ_Cube(t *testing.T) {
	g, err := gridio.ConvertOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("ConvertOBJ error: %v", err)
	}
	if g.GridID != "C" {
		t.Errorf("GridID = %q; want C", g.GridID)
	}
	if len(g.Vertices) != 8 || len(g.Faces) != 6 {
		t.Fatalf("V/F = %d/%d; want 8/6", len(g.Vertices), len(g.Faces))
	}
	topo, err := g.BuildTopology()
	if err != nil {
		t.Fatalf("BuildTopology error: %v", err)
	}
	if topo.EdgeCount() != 12 {
		t.Errorf("EdgeCount = %d; want 12", topo.EdgeCount())
	}
}

// TestConvertOBJ_Errors covers index-cluster parsing, open meshes, and
// malformed lines.
func TestConvertOBJ_Errors(t *testing.T) {
	open := strings.Replace(cubeOBJ, "f 4 1 5 8\n", "", 1)
	if _, err := gridio.ConvertOBJ(strings.NewReader(open)); !errors.Is(err, gridio.ErrNotClosed) {
		t.Errorf("open mesh error = %v; want ErrNotClosed", err)
	}
	if _, err := gridio.ConvertOBJ(strings.NewReader("v 1 2\n")); !errors.Is(err, gridio.ErrMalformedOBJ) {
		t.Errorf("short vertex error = %v; want ErrMalformedOBJ", err)
	}
	if _, err := gridio.ConvertOBJ(strings.NewReader("f 1 x 3\n")); !errors.Is(err, gridio.ErrMalformedOBJ) {
		t.Errorf("bad face index error = %v; want ErrMalformedOBJ", err)
	}
}

// TestConvertOBJ_IndexClusters verifies v/vt/vn clusters use only the
// vertex component.
func TestConvertOBJ_IndexClusters(t *testing.T) {
	in := strings.Replace(cubeOBJ, "f 1 2 3 4", "f 1/1/1 2/2/2 3/3/3 4/4/4", 1)
	g, err := gridio.ConvertOBJ(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ConvertOBJ error: %v", err)
	}
	if got := g.Faces[0]; got[0] != 0 || got[3] != 3 {
		t.Errorf("face 0 = %v; want [0 1 2 3]", got)
	}
}

// TestGridJSONRoundTrip encodes and re-decodes a grid.
func TestGridJSONRoundTrip(t *testing.T) {
	g, err := gridio.DecodeGrid(strings.NewReader(cubeJSON))
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	var sb strings.Builder
	if err := g.Encode(&sb); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	back, err := gridio.DecodeGrid(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("re-DecodeGrid error: %v", err)
	}
	if back.GridID != g.GridID || len(back.Faces) != len(g.Faces) {
		t.Errorf("round trip changed grid: %q/%d faces", back.GridID, len(back.Faces))
	}
}
