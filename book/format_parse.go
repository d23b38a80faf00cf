package book

import (
	"fmt"
	"sort"
	"strings"
)

// Books author their inline styling with "$(...)" format codes. Parsing
// happens once at load time, the renderer only ever sees finished trees.

type macroPair struct {
	from string
	to   string
}

// Rewrites applied to the raw string before parsing. Order matters: prefix
// macros like "$(list" must run after their spelled-out aliases.
var defaultMacros = []macroPair{
	{"$(obf)", "$(k)"},
	{"$(bold)", "$(l)"},
	{"$(strike)", "$(m)"},
	{"$(italic)", "$(o)"},
	{"$(italics)", "$(o)"},
	{"$(list", "$(li"},
	{"$(reset)", "$()"},
	{"$(clear)", "$()"},
	{"$(2br)", "$(br2)"},
	{"$(p)", "$(br2)"},
	{"/$", "$()"},
	{"<br>", "$(br)"},
	{"$(nocolor)", "$(0)"},
	{"$(item)", "$(#b0b)"},
	{"$(thing)", "$(#490)"},
}

// Classic sixteen text color codes, single hex digit to RGB.
var colorCodes = map[string]string{
	"0": "000000", "1": "0000aa", "2": "00aa00", "3": "00aaaa",
	"4": "aa0000", "5": "aa00aa", "6": "ffaa00", "7": "aaaaaa",
	"8": "555555", "9": "5555ff", "a": "55ff55", "b": "55ffff",
	"c": "ff5555", "d": "ff55ff", "e": "ffff55", "f": "ffffff",
}

func expandMacros(s string, macros map[string]string) string {
	seen := make(map[string]bool, len(defaultMacros))
	for _, m := range defaultMacros {
		if to, ok := macros[m.from]; ok {
			s = strings.ReplaceAll(s, m.from, to)
		} else {
			s = strings.ReplaceAll(s, m.from, m.to)
		}
		seen[m.from] = true
	}
	// book-supplied macros in deterministic order
	keys := make([]string, 0, len(macros))
	for k := range macros {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, macros[k])
	}
	return s
}

// ParseFormat parses a block of formatted text: paragraphs are opened
// implicitly and split on $(br2) / $(li).
func ParseFormat(text string, macros map[string]string) (*FormatTree, error) {
	return parseFormat(text, macros, false)
}

// ParseInline parses a single-line formatted string (entry and category
// names); no implicit paragraph is opened and paragraph breaks degrade to
// plain newlines.
func ParseInline(text string, macros map[string]string) (*FormatTree, error) {
	return parseFormat(text, macros, true)
}

func parseFormat(text string, macros map[string]string, inline bool) (*FormatTree, error) {
	text = expandMacros(text, macros)

	root := BaseNode()
	stack := []*FormatTree{root}
	if !inline {
		stack = append(stack, StyledNode(StyleTagPara, ""))
	}

	push := func(n *FormatTree) { stack = append(stack, n) }
	// pop attaches the innermost open node to its parent
	pop := func() {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top := stack[len(stack)-1]
		top.Children = append(top.Children, n)
	}
	appendText := func(txt string) {
		top := stack[len(stack)-1]
		top.Children = append(top.Children, TextNode(txt))
	}
	// unwind closes every open style (and paragraph) down to the root
	unwind := func() {
		for len(stack) > 1 {
			pop()
		}
	}
	// depth of the innermost protected node: root, or root+paragraph
	floor := func() int {
		if inline {
			return 1
		}
		return 2
	}
	closeStyle := func(tag StyleTag) error {
		for i := len(stack) - 1; i >= floor(); i-- {
			if stack[i].Kind == FormatStyled && stack[i].Style == tag {
				for len(stack) > i {
					pop()
				}
				return nil
			}
		}
		return fmt.Errorf("closing $(/%s) without matching open style", tag)
	}

	for len(text) > 0 {
		start := strings.Index(text, "$(")
		if start < 0 {
			appendText(text)
			break
		}
		if start > 0 {
			appendText(text[:start])
		}
		end := strings.Index(text[start:], ")")
		if end < 0 {
			return nil, fmt.Errorf("unterminated format code near %q", text[start:])
		}
		cmd := text[start+2 : start+end]
		text = text[start+end+1:]

		switch {
		case cmd == "":
			// pop the most recent style
			if len(stack) <= floor() {
				return nil, fmt.Errorf("stray $() with no open style")
			}
			pop()
		case cmd == "r":
			// reset: close all open styles (paragraph stays open)
			for len(stack) > floor() {
				pop()
			}
		case cmd == "br":
			appendText("\n")
		case cmd == "br2":
			if inline {
				appendText("\n\n")
				continue
			}
			unwind()
			push(StyledNode(StyleTagPara, ""))
		case cmd == "li":
			if inline {
				return nil, fmt.Errorf("format code $(li) is not allowed in inline text")
			}
			unwind()
			li := StyledNode(StyleTagPara, "")
			li.Attrs = []Attr{{Key: "clazz", Value: "fake-li"}}
			push(li)
		case cmd == "playername":
			appendText("[Playername]")
		case cmd == "k":
			push(StyledNode(StyleTagObf, ""))
		case cmd == "l":
			push(StyledNode(StyleTagBold, ""))
		case cmd == "m":
			push(StyledNode(StyleTagStrikethrough, ""))
		case cmd == "n":
			push(StyledNode(StyleTagUnderline, ""))
		case cmd == "o":
			push(StyledNode(StyleTagItalic, ""))
		case strings.HasPrefix(cmd, "l:"):
			push(StyledNode(StyleTagLink, cmd[2:]))
		case cmd == "/l":
			if err := closeStyle(StyleTagLink); err != nil {
				return nil, err
			}
		case strings.HasPrefix(cmd, "t:"):
			push(StyledNode(StyleTagTooltip, cmd[2:]))
		case cmd == "/t":
			if err := closeStyle(StyleTagTooltip); err != nil {
				return nil, err
			}
		case strings.HasPrefix(cmd, "c:"):
			push(StyledNode(StyleTagCmdClick, cmd[2:]))
		case cmd == "/c":
			if err := closeStyle(StyleTagCmdClick); err != nil {
				return nil, err
			}
		case strings.HasPrefix(cmd, "#"):
			hex := strings.ToLower(cmd[1:])
			if !isHex(hex) || (len(hex) != 3 && len(hex) != 6) {
				return nil, fmt.Errorf("malformed color code $(%s)", cmd)
			}
			push(StyledNode(StyleTagColor, hex))
		default:
			if hex, ok := colorCodes[cmd]; ok {
				push(StyledNode(StyleTagColor, hex))
				continue
			}
			return nil, fmt.Errorf("unknown format code $(%s)", cmd)
		}
	}

	unwind()
	return root, nil
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return len(s) > 0
}
