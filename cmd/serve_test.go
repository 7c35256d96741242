package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huttarl/slitherlink3D/session"
)

func playSession(t *testing.T, puzzles string) (*session.Session, *highlightCollector) {
	t.Helper()
	collector := &highlightCollector{}
	sess := session.New(session.WithHighlighter(collector))

	req := &wsRequest{Action: "load", Grid: "cube"}
	if puzzles != "" {
		req.Puzzles = puzzles
	}
	resp, err := dispatch(sess, collector, req)
	require.NoError(t, err)
	require.Equal(t, "cube", resp.(map[string]interface{})["gridId"])

	return sess, collector
}

func TestDispatch_ToggleByVertices(t *testing.T) {
	sess, collector := playSession(t, "")

	resp, err := dispatch(sess, collector, &wsRequest{Action: "toggle", V1: 4, V2: 5})
	require.NoError(t, err)
	m := resp.(map[string]interface{})
	require.Equal(t, "Filled", m["state"])

	edgeID := m["edgeId"].(int)
	resp, err = dispatch(sess, collector, &wsRequest{Action: "toggle", EdgeID: &edgeID})
	require.NoError(t, err)
	require.Equal(t, "RuledOut", resp.(map[string]interface{})["state"])

	_, err = dispatch(sess, collector, &wsRequest{Action: "toggle"})
	require.Error(t, err)
}

func TestDispatch_CheckAndReset(t *testing.T) {
	sess, collector := playSession(t, "")

	resp, err := dispatch(sess, collector, &wsRequest{Action: "check"})
	require.NoError(t, err)
	m := resp.(map[string]interface{})
	require.Equal(t, false, m["solved"])
	require.NotEmpty(t, m["violations"])

	_, err = dispatch(sess, collector, &wsRequest{Action: "reset"})
	require.NoError(t, err)
}

func TestDispatch_PuzzleFlow(t *testing.T) {
	p := writeTemp(t, "cube.puzzles.json", goodPuzzles)
	sess, collector := playSession(t, p)

	_, err := dispatch(sess, collector, &wsRequest{Action: "selectPuzzle", Index: 0})
	require.NoError(t, err)

	resp, err := dispatch(sess, collector, &wsRequest{Action: "showSolution"})
	require.NoError(t, err)
	require.Len(t, resp.(map[string]interface{})["edges"], 4)
}

func TestDispatch_UnknownAction(t *testing.T) {
	sess, collector := playSession(t, "")

	_, err := dispatch(sess, collector, &wsRequest{Action: "launch"})
	require.Error(t, err)
}
