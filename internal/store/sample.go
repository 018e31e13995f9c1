package store

import "asciitree-cli/internal/model"

var sampleNodes = []model.Node{
	{ID: "1", Name: "Root", Kind: model.KindFolder},
	{ID: "2", ParentID: model.StrPtr("1"), Name: "Documents", Kind: model.KindFolder},
	{ID: "3", ParentID: model.StrPtr("2"), Name: "Reports", Kind: model.KindFolder},
	{ID: "4", ParentID: model.StrPtr("3"), Name: "Monthly_Report.txt", Kind: model.KindFile},
	{ID: "5", ParentID: model.StrPtr("3"), Name: "Annual_Report.txt", Kind: model.KindFile},
	{ID: "6", ParentID: model.StrPtr("2"), Name: "Invoices", Kind: model.KindFolder},
	{ID: "7", ParentID: model.StrPtr("1"), Name: "Media", Kind: model.KindFolder},
	{ID: "8", ParentID: model.StrPtr("7"), Name: "Images", Kind: model.KindFolder},
	{ID: "9", ParentID: model.StrPtr("8"), Name: "Profile_Picture.jpg", Kind: model.KindFile},
	{ID: "10", ParentID: model.StrPtr("8"), Name: "Banner.jpg", Kind: model.KindFile},
	{ID: "11", ParentID: model.StrPtr("7"), Name: "Videos", Kind: model.KindFolder},
	{ID: "12", ParentID: model.StrPtr("11"), Name: "Intro_Video.mp4", Kind: model.KindFile},
	{ID: "13", ParentID: model.StrPtr("1"), Name: "Games", Kind: model.KindFolder},
	{ID: "14", ParentID: model.StrPtr("13"), Name: "Retro", Kind: model.KindFolder},
	{ID: "15", ParentID: model.StrPtr("14"), Name: "Doom", Kind: model.KindFile},
	{ID: "16", ParentID: model.StrPtr("14"), Name: "Quake", Kind: model.KindFile},
}

// Sample returns the demo tree with freshly generated ids.
func Sample() []model.Node {
	return Reidentify(sampleNodes, NewID)
}

// Reidentify copies nodes, replacing every id with newID() and rewriting
// parent references to match. Parents that do not resolve inside nodes
// become roots.
func Reidentify(nodes []model.Node, newID func() string) []model.Node {
	mapping := make(map[string]string, len(nodes))
	for _, n := range nodes {
		mapping[n.ID] = newID()
	}
	out := make([]model.Node, len(nodes))
	for i, n := range nodes {
		out[i] = model.Node{ID: mapping[n.ID], Name: n.Name, Kind: n.Kind}
		if n.ParentID == nil {
			continue
		}
		if pid, ok := mapping[*n.ParentID]; ok {
			out[i].ParentID = model.StrPtr(pid)
		}
	}
	return out
}
