// Copyright 2025, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// excelize can insert and remove page breaks but has no getter for
// them, so the <rowBreaks> element is read straight from the worksheet
// part of the package.

type xlWorkbook struct {
	Sheets struct {
		Sheet []struct {
			Name string `xml:"name,attr"`
			RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sheet"`
	} `xml:"sheets"`
}

type xlRels struct {
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xlWorksheet struct {
	RowBreaks struct {
		Brk []struct {
			ID int `xml:"id,attr"`
		} `xml:"brk"`
	} `xml:"rowBreaks"`
}

// readRowBreaks returns the horizontal page-break row indices of the
// sheetIndex'th worksheet (in workbook order) of the .xlsx at fn.
func readRowBreaks(fn string, sheetIndex int) ([]int, error) {
	zr, err := zip.OpenReader(fn)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var wb xlWorkbook
	if err = decodePart(&zr.Reader, "xl/workbook.xml", &wb); err != nil {
		return nil, err
	}
	if sheetIndex < 0 || sheetIndex >= len(wb.Sheets.Sheet) {
		return nil, fmt.Errorf("no worksheet #%d", sheetIndex)
	}
	var rels xlRels
	if err = decodePart(&zr.Reader, "xl/_rels/workbook.xml.rels", &rels); err != nil {
		return nil, err
	}
	var target string
	for _, rel := range rels.Relationship {
		if rel.ID == wb.Sheets.Sheet[sheetIndex].RID {
			target = rel.Target
			break
		}
	}
	if target == "" {
		return nil, fmt.Errorf("worksheet %q: no relationship target", wb.Sheets.Sheet[sheetIndex].Name)
	}
	if strings.HasPrefix(target, "/") {
		target = strings.TrimPrefix(target, "/")
	} else if !strings.HasPrefix(target, "xl/") {
		target = "xl/" + target
	}

	var ws xlWorksheet
	if err = decodePart(&zr.Reader, target, &ws); err != nil {
		return nil, err
	}
	breaks := make([]int, 0, len(ws.RowBreaks.Brk))
	for _, brk := range ws.RowBreaks.Brk {
		breaks = append(breaks, brk.ID)
	}
	return breaks, nil
}

func decodePart(zr *zip.Reader, name string, v any) error {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		err = xml.NewDecoder(rc).Decode(v)
		rc.Close()
		if err != nil && err != io.EOF {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("%s: not in package", name)
}
