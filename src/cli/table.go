// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"
	"strconv"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

var classificationHeaders = []string{"Target", "Level", "Subject", "Organization", "Issuer", "Expires", "Days", "Urgency"}

// renderTable writes rows as a markdown table.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// classificationRow formats one classified certificate.
func classificationRow(target string, c certinfo.Classification) []string {
	urgency := c.Expiration.String()
	if urgency == "" {
		urgency = "-"
	}
	org := c.SubjectOrganization
	if org == "" {
		org = "-"
	}
	issuer := c.IssuerOrganization
	if issuer == "" {
		issuer = c.IssuerCommonName
	}

	return []string{
		target,
		c.ValidationLevel.String(),
		c.SubjectCommonName,
		org,
		issuer,
		c.NotAfter.UTC().Format(time.DateOnly),
		strconv.Itoa(c.DaysUntil),
		urgency,
	}
}

// failureRow formats a target that could not be classified.
func failureRow(target string, err error) []string {
	row := make([]string, len(classificationHeaders))
	row[0] = target
	row[1] = certinfo.Unvalidated.String()
	for i := 2; i < len(row); i++ {
		row[i] = "-"
	}
	row[len(row)-1] = err.Error()
	return row
}
