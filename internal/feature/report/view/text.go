package view

import (
	"bufio"
	"fmt"
	"io"
)

// RenderText はセクションをターミナル向けのプレーンテキストで書き出します。
func RenderText(w io.Writer, sections []Section) error {
	bw := bufio.NewWriter(w)
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "== %s ==\n", s.Title)
		for _, g := range s.Groups {
			if g.Heading != "" {
				fmt.Fprintf(bw, "\n%s\n", g.Heading)
			}
			if g.Text != "" {
				fmt.Fprintf(bw, "  %s\n", g.Text)
			}
			for _, item := range g.Items {
				fmt.Fprintf(bw, "  %s %s\n", item.Marker, item.Text)
			}
		}
	}
	return bw.Flush()
}
