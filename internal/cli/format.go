package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zarlcorp/zclaim/internal/inputfmt"
	"github.com/zarlcorp/zclaim/internal/pagerange"
)

// CmdMask formats a value with an input mask.
//
//	zclaim mask <kind> <value>
func CmdMask(w io.Writer, args []string) error {
	pos := positional(args)
	if len(pos) < 2 {
		return fmt.Errorf("usage: zclaim mask <%s> <value>", kindList())
	}

	value := strings.Join(pos[1:], " ")
	kind, ok := inputfmt.ParseKind(pos[0])
	if !ok {
		slog.Warn("unknown mask kind, value left as is", "kind", pos[0], "known", kindList())
		kind = inputfmt.Kind(pos[0])
	}

	fmt.Fprintln(w, inputfmt.MaskValue(value, kind))
	return nil
}

// CmdDate converts between an ISO date and its month/day/year parts.
//
//	zclaim date <iso> [--json]
//	zclaim date --month M --day D --year Y [--no-pad]
func CmdDate(w io.Writer, args []string) error {
	month, hasMonth := flagValue(args, "--month")
	day, hasDay := flagValue(args, "--day")
	year, hasYear := flagValue(args, "--year")

	if hasMonth || hasDay || hasYear {
		var opts []inputfmt.FormatOption
		if hasFlag(args, "--no-pad") {
			opts = append(opts, inputfmt.SkipLeadingZeros())
		}
		iso := inputfmt.FormatFieldsAsISO8601(inputfmt.DateParts{Month: month, Day: day, Year: year}, opts...)
		if iso == "" {
			return fmt.Errorf("date: parts must be digits only")
		}
		fmt.Fprintln(w, iso)
		return nil
	}

	pos := positional(args)
	if len(pos) == 0 {
		return fmt.Errorf("usage: zclaim date <yyyy-mm-dd> | --month M --day D --year Y")
	}

	p := inputfmt.ParseDateParts(pos[0])
	if hasFlag(args, "--json") {
		return printJSON(w, p)
	}

	fmt.Fprintf(w, "  month: %s\n", p.Month)
	fmt.Fprintf(w, "  day:   %s\n", p.Day)
	fmt.Fprintf(w, "  year:  %s\n", p.Year)
	return nil
}

// CmdPages prints the truncated page range for a position.
//
//	zclaim pages <current> <total>
func CmdPages(w io.Writer, args []string) error {
	pos := positional(args)
	if len(pos) != 2 {
		return fmt.Errorf("usage: zclaim pages <current> <total>")
	}

	current, err := strconv.Atoi(pos[0])
	if err != nil {
		return fmt.Errorf("pages: current: %w", err)
	}
	total, err := strconv.Atoi(pos[1])
	if err != nil {
		return fmt.Errorf("pages: total: %w", err)
	}
	if total < 1 {
		return fmt.Errorf("pages: total must be at least 1")
	}

	fmt.Fprintln(w, RenderPages(pagerange.Truncate(current, total), current))
	return nil
}

// RenderPages joins a truncated range with spaces, bracketing the current
// page.
func RenderPages(entries []pagerange.Entry, current int) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		if !e.IsGap() && e.Page() == current {
			parts[i] = "[" + e.String() + "]"
			continue
		}
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func kindList() string {
	kinds := inputfmt.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, "|")
}
