package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/huttarl/slitherlink3D/checker"
	"github.com/huttarl/slitherlink3D/session"
)

var serveAddr string

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local tool, renderer runs on another port
	},
}

// wsRequest is one client action. Edges are addressed either by ID or
// by their two endpoint vertices, whichever the renderer has at hand.
type wsRequest struct {
	Action  string `json:"action"` // load | selectPuzzle | toggle | check | showSolution | reset
	Grid    string `json:"grid,omitempty"`
	Puzzles string `json:"puzzles,omitempty"` // path to a puzzle file for the grid
	Index   int    `json:"index,omitempty"`
	EdgeID  *int   `json:"edgeId,omitempty"`
	V1      int    `json:"v1,omitempty"`
	V2      int    `json:"v2,omitempty"`
	Reverse bool   `json:"reverse,omitempty"`
}

// wsViolation is the wire shape of a rule violation.
type wsViolation struct {
	Kind   string `json:"kind"`
	Vertex int    `json:"vertex,omitempty"`
	Face   int    `json:"face,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func toWire(vs []checker.Violation) []wsViolation {
	out := make([]wsViolation, len(vs))
	for i, v := range vs {
		out[i] = wsViolation{
			Kind:   v.Kind.String(),
			Vertex: v.VertexID,
			Face:   v.FaceID,
			Detail: v.Detail,
		}
	}
	return out
}

func sendJSON(ws *websocket.Conn, log logr.Logger, v interface{}) error {
	if err := ws.WriteJSON(v); err != nil {
		log.Error(err, "websocket write failed")
		return err
	}
	return nil
}

// serveCmd runs a websocket endpoint a 3D renderer drives: each
// connection gets its own play session, and every action returns the
// state the renderer needs to redraw.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve interactive play sessions over websockets",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := funcr.New(func(prefix, args string) {
			fmt.Fprintln(os.Stderr, prefix, args)
		}, funcr.Options{})

		http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				log.Error(err, "websocket upgrade failed")
				return
			}
			defer ws.Close()
			handleConn(ws, log)
		})

		log.Info("listening", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, nil)
	},
}

// handleConn drives one client. The read loop serializes all access to
// the session, so no further locking is needed.
func handleConn(ws *websocket.Conn, log logr.Logger) {
	collector := &highlightCollector{}
	sess := session.New(
		session.WithLogger(log.WithName("session")),
		session.WithHighlighter(collector),
	)
	log.Info("client connected", "remote", ws.RemoteAddr().String())

	for {
		var req wsRequest
		if err := ws.ReadJSON(&req); err != nil {
			log.Info("client disconnected", "reason", err.Error())
			return
		}

		resp, err := dispatch(sess, collector, &req)
		if err != nil {
			resp = map[string]interface{}{"action": req.Action, "error": err.Error()}
		}
		if sendJSON(ws, log, resp) != nil {
			return
		}
	}
}

func dispatch(sess *session.Session, collector *highlightCollector, req *wsRequest) (interface{}, error) {
	switch req.Action {
	case "load":
		g, err := loadGrid(req.Grid)
		if err != nil {
			return nil, err
		}
		token := sess.BeginLoad()
		if err := sess.FinishLoad(token, g); err != nil {
			return nil, err
		}
		if req.Puzzles != "" {
			pf, err := loadPuzzles(req.Puzzles)
			if err != nil {
				return nil, err
			}
			if err := sess.LoadPuzzles(pf.Set()); err != nil {
				return nil, err
			}
		}
		return map[string]interface{}{
			"action":  "load",
			"gridId":  sess.GridID(),
			"grid":    g,
			"puzzles": sess.PuzzleCount(),
		}, nil

	case "selectPuzzle":
		if err := sess.SelectPuzzle(req.Index); err != nil {
			return nil, err
		}
		return map[string]interface{}{"action": "selectPuzzle", "index": req.Index}, nil

	case "toggle":
		edgeID, err := resolveEdge(sess, req)
		if err != nil {
			return nil, err
		}
		state, violations, err := sess.ToggleEdge(edgeID, req.Reverse)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"action":     "toggle",
			"edgeId":     edgeID,
			"state":      state.String(),
			"violations": toWire(violations),
		}, nil

	case "check":
		res, err := sess.CheckSolution()
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"action":     "check",
			"solved":     res.Solved,
			"loopLength": res.LoopLength,
			"violations": toWire(res.Violations),
		}, nil

	case "showSolution":
		collector.reset()
		if err := sess.ShowSolution(); err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"action": "showSolution",
			"edges":  collector.edges,
		}, nil

	case "reset":
		sess.ResetBoard()
		return map[string]interface{}{"action": "reset"}, nil

	default:
		return nil, fmt.Errorf("unknown action %q", req.Action)
	}
}

func resolveEdge(sess *session.Session, req *wsRequest) (int, error) {
	if req.EdgeID != nil {
		return *req.EdgeID, nil
	}
	if req.V1 == req.V2 {
		return 0, errors.New("toggle needs edgeId or two distinct vertices")
	}
	return sess.Edge(req.V1, req.V2)
}

// highlightCollector buffers solution edges for one showSolution reply.
type highlightCollector struct{ edges []int }

func (c *highlightCollector) HighlightSolutionEdge(eid int) { c.edges = append(c.edges, eid) }
func (c *highlightCollector) reset()                        { c.edges = []int{} }

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8993", "address to listen on (e.g. :8993)")
}
