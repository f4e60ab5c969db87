package parser

import (
	"regexp"
	"strings"
)

var directiveRe = regexp.MustCompile(`^\s*#\s*(\w+)\s*(.*)$`)
var definedRe = regexp.MustCompile(`^(!)?\s*defined\s*\(?\s*(\w+)\s*\)?$`)
var definedCallRe = regexp.MustCompile(`defined\s*\(\s*\w+\s*\)`)
var includeRe = regexp.MustCompile(`^(?:"([^"]+)"|<([^>]+)>)`)

type condFrame struct {
	parentActive bool
	active       bool
	taken        bool
}

// preprocess drops the lines excluded by conditional directives and
// returns the remaining source with the #include directives found in it.
// Directive lines themselves are removed. Only enough of the preprocessor
// is understood to walk the Vulkan headers: #define without a value feeds
// #ifdef, and any #if expression other than a literal or a single
// defined() test is taken as true.
func preprocess(content string, defines map[string]bool) (string, []Include) {
	var out strings.Builder
	var includes []Include
	var stack []condFrame

	active := true

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")

		m := directiveRe.FindStringSubmatch(line)
		if m == nil {
			if active {
				out.WriteString(line)
			}
			out.WriteByte('\n')
			continue
		}

		// Join continuation lines so multi-line macros are skipped whole.
		arg := m[2]
		for strings.HasSuffix(arg, "\\") && i+1 < len(lines) {
			i++
			arg = strings.TrimSuffix(arg, "\\") + " " + strings.TrimRight(lines[i], "\r")
			out.WriteByte('\n')
		}
		arg = strings.TrimSpace(stripLineComment(arg))

		switch m[1] {
		case "ifdef":
			stack = append(stack, push(active, defines[arg]))
		case "ifndef":
			stack = append(stack, push(active, !defines[arg]))
		case "if":
			stack = append(stack, push(active, evalCondition(arg, defines)))
		case "elif":
			if len(stack) > 0 {
				f := &stack[len(stack)-1]
				f.active = f.parentActive && !f.taken && evalCondition(arg, defines)
				f.taken = f.taken || f.active
			}
		case "else":
			if len(stack) > 0 {
				f := &stack[len(stack)-1]
				f.active = f.parentActive && !f.taken
				f.taken = true
			}
		case "endif":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case "define":
			if active {
				if name := strings.Fields(arg); len(name) > 0 {
					defines[strings.SplitN(name[0], "(", 2)[0]] = true
				}
			}
		case "undef":
			if active {
				delete(defines, arg)
			}
		case "include":
			if active {
				if im := includeRe.FindStringSubmatch(arg); im != nil {
					if im[1] != "" {
						includes = append(includes, Include{Name: im[1]})
					} else {
						includes = append(includes, Include{Name: im[2], System: true})
					}
				}
			}
		}

		active = true
		if len(stack) > 0 {
			active = stack[len(stack)-1].active
		}
		out.WriteByte('\n')
	}

	return out.String(), includes
}

func push(parentActive, cond bool) condFrame {
	return condFrame{
		parentActive: parentActive,
		active:       parentActive && cond,
		taken:        cond,
	}
}

// evalCondition evaluates an #if or #elif expression. Literal 0 and 1,
// defined(X), !defined(X) and &&/|| chains of those are understood; any
// other expression is taken as true.
func evalCondition(expr string, defines map[string]bool) bool {
	if v, ok := evalDefined(expr, defines); ok {
		return v
	}
	return true
}

func evalDefined(expr string, defines map[string]bool) (bool, bool) {
	expr = strings.TrimSpace(expr)

	// Grouping parentheses make the operator split below unsafe.
	if strings.Contains(definedCallRe.ReplaceAllString(expr, ""), "(") {
		return false, false
	}

	if terms := strings.Split(expr, "||"); len(terms) > 1 {
		result := false
		for _, term := range terms {
			v, ok := evalDefined(term, defines)
			if !ok {
				return false, false
			}
			result = result || v
		}
		return result, true
	}

	if terms := strings.Split(expr, "&&"); len(terms) > 1 {
		result := true
		for _, term := range terms {
			v, ok := evalDefined(term, defines)
			if !ok {
				return false, false
			}
			result = result && v
		}
		return result, true
	}

	switch expr {
	case "0":
		return false, true
	case "1":
		return true, true
	}

	if m := definedRe.FindStringSubmatch(expr); m != nil {
		return defines[m[2]] != (m[1] == "!"), true
	}

	return false, false
}

func stripLineComment(s string) string {
	if i := strings.Index(s, "//"); i != -1 {
		s = s[:i]
	}
	if i := strings.Index(s, "/*"); i != -1 {
		s = s[:i]
	}
	return s
}
