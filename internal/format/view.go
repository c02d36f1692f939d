package format

import (
	"fmt"
	"strings"

	"jalali-picker/internal/picker"
)

// ViewText renders a picker view as plain lines, one per field, in display
// order. The selected option is bracketed; disabled fields show only the
// placeholder.
func ViewText(v picker.View) string {
	var sb strings.Builder
	if v.Label != "" {
		sb.WriteString(v.Label)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "date: %s\n", v.Date)
	for _, fo := range v.Fields {
		state := "on"
		if !fo.Enabled {
			state = "off"
		}
		fmt.Fprintf(&sb, "%s (%s, %s):", fo.Label, fo.Field, state)
		if !fo.Enabled {
			fmt.Fprintf(&sb, " [%s]\n", fo.Placeholder)
			continue
		}
		if fo.Selected < 0 {
			fmt.Fprintf(&sb, " [%s]", fo.Placeholder)
		} else {
			fmt.Fprintf(&sb, " %s", fo.Placeholder)
		}
		for i, o := range fo.Options {
			if i == fo.Selected {
				fmt.Fprintf(&sb, " [%s]", o.Text)
			} else {
				sb.WriteString(" " + o.Text)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
