package feedback

import (
	"html"
	"strings"
)

const textWidth = 60

// RenderHTML renders blocks as an HTML fragment. Consecutive bullets share one list.
func RenderHTML(blocks []Block) string {
	var sb strings.Builder
	inList := false

	for _, b := range blocks {
		if b.Kind != KindBullet && inList {
			sb.WriteString("</ul>\n")
			inList = false
		}

		text := html.EscapeString(b.Text)
		switch b.Kind {
		case KindBold:
			sb.WriteString("<p><strong>" + text + "</strong></p>\n")
		case KindSubheading:
			sb.WriteString("<h3>" + text + "</h3>\n")
		case KindHeading:
			sb.WriteString("<h2>" + text + "</h2>\n")
		case KindBullet:
			if !inList {
				sb.WriteString("<ul>\n")
				inList = true
			}
			sb.WriteString("<li>" + text + "</li>\n")
		case KindDivider:
			sb.WriteString("<hr>\n")
		default:
			sb.WriteString("<p>" + text + "</p>\n")
		}
	}
	if inList {
		sb.WriteString("</ul>\n")
	}

	return sb.String()
}

// RenderText renders blocks for a terminal.
func RenderText(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Kind {
		case KindBold:
			sb.WriteString(strings.ToUpper(b.Text) + "\n")
		case KindHeading:
			sb.WriteString("\n" + b.Text + "\n" + strings.Repeat("=", runeLen(b.Text)) + "\n")
		case KindSubheading:
			sb.WriteString("\n" + b.Text + "\n" + strings.Repeat("-", runeLen(b.Text)) + "\n")
		case KindBullet:
			sb.WriteString("  • " + b.Text + "\n")
		case KindDivider:
			sb.WriteString(strings.Repeat("─", textWidth) + "\n")
		default:
			sb.WriteString(b.Text + "\n")
		}
	}
	return strings.TrimLeft(sb.String(), "\n")
}

func runeLen(s string) int {
	return len([]rune(s))
}
