package adapter

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// parseBBoxLayout reads the XHTML emitted by `pdftotext -bbox` and returns
// word spans grouped by 1-based page number. Word coordinates are in PDF
// points with the origin at the top-left.
func parseBBoxLayout(doc string) (map[int][]layoutWord, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	dec.Strict = false

	pages := make(map[int][]layoutWord)
	page := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break // io.EOF or malformed tail; keep what we parsed
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "page":
			page++
		case "word":
			if page == 0 {
				continue
			}
			w := layoutWord{}
			for _, attr := range se.Attr {
				v, perr := strconv.ParseFloat(attr.Value, 64)
				if perr != nil {
					continue
				}
				switch attr.Name.Local {
				case "xMin":
					w.XMin = v
				case "yMin":
					w.YMin = v
				case "xMax":
					w.XMax = v
				case "yMax":
					w.YMax = v
				}
			}
			var text string
			if err := dec.DecodeElement(&text, &se); err != nil {
				continue
			}
			w.Text = strings.TrimSpace(text)
			if w.Text == "" {
				continue
			}
			pages[page] = append(pages[page], w)
		}
	}
	return pages, nil
}

type layoutWord struct {
	Text                   string
	XMin, YMin, XMax, YMax float64
}
