package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/wizzymore/ru/internal/diskusage"
)

// Options configures how trees are printed.
type Options struct {
	// MaxDepth is the deepest level printed below each root (0 = root only).
	MaxDepth int
	// Sort orders siblings by ascending size before printing.
	Sort bool
	// Bytes prints raw byte counts instead of human-readable sizes.
	Bytes bool
	// Binary selects KiB/MiB units over kB/MB.
	Binary bool
	// MinSize suppresses lines for entries smaller than this many bytes.
	MinSize uint64
	// Color styles the size and path columns.
	Color bool
}

// Reporter writes entry trees to a writer.
type Reporter struct {
	w   io.Writer
	opt Options

	sizeStyle lipgloss.Style
	dirStyle  lipgloss.Style
}

// New creates a Reporter writing to w.
func New(w io.Writer, opt Options) *Reporter {
	renderer := lipgloss.NewRenderer(w)

	return &Reporter{
		w:         w,
		opt:       opt,
		sizeStyle: renderer.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		dirStyle:  renderer.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// Render prints root and its visible descendants down to MaxDepth.
// Children are sorted in place when Sort is set.
func (r *Reporter) Render(root *diskusage.Entry) error {
	if root == nil {
		return nil
	}

	return r.render(root, 0)
}

func (r *Reporter) render(e *diskusage.Entry, depth int) error {
	if depth > r.opt.MaxDepth {
		return nil
	}

	size := e.Size()
	if size < r.opt.MinSize {
		// Children are never larger than their parent.
		return nil
	}

	if e.IsDir() && depth < r.opt.MaxDepth {
		if r.opt.Sort {
			e.SortChildren()
		}

		for _, c := range e.Children {
			if c.Hidden {
				continue
			}

			if err := r.render(c, depth+1); err != nil {
				return err
			}
		}
	}

	return r.line(size, e)
}

func (r *Reporter) line(size uint64, e *diskusage.Entry) error {
	field := FormatBytes(size)
	if !r.opt.Bytes {
		field = FormatSize(size, r.opt.Binary)
	}

	field = fmt.Sprintf("%-*s", SizeWidth, field)
	path := e.Path

	if r.opt.Color {
		field = r.sizeStyle.Render(field)

		if e.IsDir() {
			path = r.dirStyle.Render(path)
		}
	}

	_, err := fmt.Fprintf(r.w, "%s %s\n", field, path)

	return err
}

// Node is the JSON form of a rendered entry.
type Node struct {
	Path     string  `json:"path"`
	Size     uint64  `json:"size"`
	Dir      bool    `json:"dir"`
	Children []*Node `json:"children,omitempty"`
}

// Tree converts root into Nodes following the same depth, hidden, sort and
// size rules as Render. It returns nil when nothing would be printed.
func (r *Reporter) Tree(root *diskusage.Entry) *Node {
	if root == nil {
		return nil
	}

	return r.tree(root, 0)
}

func (r *Reporter) tree(e *diskusage.Entry, depth int) *Node {
	if depth > r.opt.MaxDepth {
		return nil
	}

	size := e.Size()
	if size < r.opt.MinSize {
		return nil
	}

	node := &Node{Path: e.Path, Size: size, Dir: e.IsDir()}

	if e.IsDir() && depth < r.opt.MaxDepth {
		if r.opt.Sort {
			e.SortChildren()
		}

		for _, c := range e.Children {
			if c.Hidden {
				continue
			}

			if n := r.tree(c, depth+1); n != nil {
				node.Children = append(node.Children, n)
			}
		}
	}

	return node
}

// RenderJSON writes the trees of all roots as one indented JSON array.
// Nil roots are skipped.
func (r *Reporter) RenderJSON(roots []*diskusage.Entry) error {
	nodes := make([]*Node, 0, len(roots))

	for _, root := range roots {
		if n := r.Tree(root); n != nil {
			nodes = append(nodes, n)
		}
	}

	data, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(r.w, string(data)); err != nil {
		return err
	}

	return nil
}
