package model

import (
	"encoding/json"
	"testing"
)

// Trimmed get_tree reply from sway 1.9.
const sampleTree = `{
  "id": 1, "type": "root", "name": "root", "focused": false,
  "nodes": [{
    "id": 3, "type": "output", "name": "eDP-1", "focused": false,
    "nodes": [{
      "id": 4, "type": "workspace", "name": "1", "num": 1, "focused": false,
      "nodes": [
        {"id": 5, "type": "con", "name": "Mozilla Firefox", "app_id": "firefox", "pid": 900, "focused": true, "nodes": [], "floating_nodes": []},
        {"id": 6, "type": "con", "name": "vim", "app_id": null,
         "window_properties": {"class": "XTerm", "instance": "xterm", "title": "vim"},
         "focused": false, "nodes": [], "floating_nodes": []}
      ],
      "floating_nodes": [
        {"id": 7, "type": "floating_con", "name": "Picture-in-Picture", "app_id": "firefox", "focused": false, "nodes": [], "floating_nodes": []}
      ]
    }],
    "floating_nodes": []
  }],
  "floating_nodes": []
}`

func TestNode_DecodesGetTreeReply(t *testing.T) {
	var root Node
	if err := json.Unmarshal([]byte(sampleTree), &root); err != nil {
		t.Fatal(err)
	}
	ws, err := FindFocusedWorkspace(&root)
	if err != nil {
		t.Fatal(err)
	}
	if ws.ID != 4 || ws.Num == nil || *ws.Num != 1 {
		t.Errorf("unexpected workspace: %+v", ws)
	}

	windows := CollectWindows(ws)
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	ff := windows[0].Window()
	if ff.AppID != "firefox" || ff.Name != "Mozilla Firefox" || ff.PID != 900 {
		t.Errorf("unexpected firefox window: %+v", ff)
	}
	xterm := windows[1].Window()
	if xterm.AppID != "" || xterm.Class != "XTerm" || xterm.Instance != "xterm" {
		t.Errorf("unexpected xterm window: %+v", xterm)
	}
	if windows[2].Type != NodeFloatingCon {
		t.Errorf("expected floating_con last, got %s", windows[2].Type)
	}
}

func TestNode_NullNameIsNotAWindow(t *testing.T) {
	var n Node
	if err := json.Unmarshal([]byte(`{"id": 9, "type": "con", "name": null, "nodes": [], "floating_nodes": []}`), &n); err != nil {
		t.Fatal(err)
	}
	if n.Name != nil {
		t.Fatal("expected nil name")
	}
	if got := CollectWindows(&n); len(got) != 0 {
		t.Errorf("unnamed con should not be a window, got %d", len(got))
	}
	if n.NameOr("?") != "?" {
		t.Error("NameOr should return fallback for nil name")
	}
}
