// Package argparse 实现补丁参数解析的级联：每个补丁只消费自己认识的参数，
// 其余参数原样留给下一个补丁，最终剩余部分即目标命令的参数。
package argparse

import (
	"strings"

	"github.com/spf13/pflag"
)

// ParseKnown 只解析 fs 中定义过的 flag（及其取值），其余参数按原顺序返回。
// "--" 及其之后的参数一律视为未知参数。
func ParseKnown(fs *pflag.FlagSet, argv []string) ([]string, error) {
	var known, rest []string
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if tok == "--" {
			rest = append(rest, argv[i:]...)
			break
		}
		flag, inline := lookupFlag(fs, tok)
		if flag == nil {
			rest = append(rest, tok)
			continue
		}
		known = append(known, tok)
		if !inline && takesValue(flag) && i+1 < len(argv) {
			i++
			known = append(known, argv[i])
		}
	}

	if err := fs.Parse(known); err != nil {
		return nil, err
	}
	return rest, nil
}

// lookupFlag 返回 tok 对应的 flag，以及取值是否已内联在 tok 中。
func lookupFlag(fs *pflag.FlagSet, tok string) (*pflag.Flag, bool) {
	switch {
	case strings.HasPrefix(tok, "--") && len(tok) > 2:
		name, _, inline := strings.Cut(tok[2:], "=")
		return fs.Lookup(name), inline
	case strings.HasPrefix(tok, "-") && len(tok) > 1:
		body := tok[1:]
		flag := fs.ShorthandLookup(body[:1])
		if flag == nil {
			return nil, false
		}
		if len(body) == 1 {
			return flag, false
		}
		// -x=value 或 -xvalue；布尔短选项组合不在支持范围内
		if takesValue(flag) {
			return flag, true
		}
		if body[1] == '=' {
			return flag, true
		}
		return nil, false
	}
	return nil, false
}

func takesValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}
