package section

import (
	"strings"

	"github.com/tsawler/dirdoc/model"
)

// declMatcher reports the synthesized title of a declaration on line, if any.
type declMatcher func(line string) (string, bool)

// declarations returns a strategy that tries the matchers in order on every
// line, keeps the first title per line and describes each start with the
// comment found above it.
func declarations(describe func(lines []string, line int) string, matchers ...declMatcher) Strategy {
	return func(lines []string) []model.Start {
		var starts []model.Start
		for i, line := range lines {
			for _, match := range matchers {
				title, ok := match(line)
				if !ok {
					continue
				}
				starts = append(starts, model.Start{
					Line:        i + 1,
					Title:       title,
					Description: describe(lines, i+1),
				})
				break
			}
		}
		return starts
	}
}

func scriptExport(line string) (string, bool) {
	m := patterns.export.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := m[patterns.export.SubexpIndex("name")]
	if name == "" {
		name = "default export"
	}
	return "export " + name, true
}

func classDecl(line string) (string, bool) {
	if m := patterns.class.FindStringSubmatch(line); m != nil {
		return "class " + m[1], true
	}
	return "", false
}

func scriptFunction(line string) (string, bool) {
	if m := patterns.function.FindStringSubmatch(line); m != nil {
		return "function " + m[1], true
	}
	return "", false
}

func scriptVariable(line string) (string, bool) {
	if m := patterns.variable.FindStringSubmatch(line); m != nil {
		return m[1] + " " + m[2], true
	}
	return "", false
}

func pythonDef(line string) (string, bool) {
	if m := patterns.pyDef.FindStringSubmatch(line); m != nil {
		return "def " + m[1], true
	}
	return "", false
}

// pythonConstant titles an upper-case assignment with its left-hand side.
func pythonConstant(line string) (string, bool) {
	if !patterns.pyConstant.MatchString(line) {
		return "", false
	}
	name, _, _ := strings.Cut(line, "=")
	return strings.TrimSpace(name), true
}

func goFunc(line string) (string, bool) {
	if m := patterns.goMethod.FindStringSubmatch(line); m != nil {
		return "method " + m[1] + "." + m[2], true
	}
	if m := patterns.goFunc.FindStringSubmatch(line); m != nil {
		return "func " + m[1], true
	}
	return "", false
}

func goType(line string) (string, bool) {
	if m := patterns.goType.FindStringSubmatch(line); m != nil {
		return "type " + m[1], true
	}
	return "", false
}

// goValue matches top-level const and var declarations. A parenthesized
// group has no single name and gets a placeholder title.
func goValue(line string) (string, bool) {
	if m := patterns.goValueGroup.FindStringSubmatch(line); m != nil {
		return m[1] + " block", true
	}
	if m := patterns.goValue.FindStringSubmatch(line); m != nil {
		return m[1] + " " + m[2], true
	}
	return "", false
}
