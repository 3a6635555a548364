package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// formatTokens renders a token list the way it would be typed in a shell,
// quoting tokens that contain whitespace.
func formatTokens(tokens []string) string {
	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsAny(token, " \t") {
			quoted = append(quoted, fmt.Sprintf("%q", token))
			continue
		}
		quoted = append(quoted, token)
	}
	return strings.Join(quoted, " ")
}
