// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package i18n provides the user-visible labels of the viewer in the
// supported languages, and selects a language from the user's locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang identifies a supported display language.
type Lang string

// Supported languages.
const (
	English Lang = "en"
	Chinese Lang = "zh"
)

// supported lists the supported languages in matcher order. The first entry
// is the fallback.
var supported = []struct {
	tag  language.Tag
	lang Lang
}{
	{language.English, English},
	{language.Chinese, Chinese},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// Match returns the supported language that best matches locale, which may
// be a BCP 47 tag ("zh-CN") or a POSIX locale name ("zh_CN.UTF-8"). Locales
// that cannot be parsed or matched select English.
func Match(locale string) Lang {
	tag, err := language.Parse(normalize(locale))
	if err != nil {
		return English
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return supported[i].lang
}

// normalize converts a POSIX locale name into a BCP 47 tag.
func normalize(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Detect selects a language from the locale environment variables, in the
// order of precedence used by POSIX: LC_ALL, LC_MESSAGES, LANG.
func Detect(lookup func(string) (string, bool)) Lang {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v, ok := lookup(name); ok && v != "" {
			return Match(v)
		}
	}
	return English
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Badge returns a short marker for l, for display in the toolbar.
func (l Lang) Badge() string {
	if l == Chinese {
		return "CN"
	}
	return "EN"
}

// Labels returns the labels for l. Unknown languages get English labels.
func (l Lang) Labels() *Labels {
	if l == Chinese {
		return &chinese
	}
	return &english
}

// Labels are the user-visible strings of the viewer.
type Labels struct {
	Valid, Invalid string

	Format, Minify, Unescape, Copy, Clear string
	Fix, Fixing, Sample, Generating      string
	SwitchLang, SwitchTheme, GoToPath    string
	Help, Quit                           string

	Editor, Tree string

	// Empty tree pane hints.
	TreeNeedsFix, TreeEmpty string

	// Editor placeholder.
	Placeholder string

	// Status messages.
	Copied, CopyFailed, FixFailed, GenerateFailed string
	AIUnavailable, Busy, NothingToRepair        string
	PathNotFound                                string
}

var english = Labels{
	Valid:   "Valid JSON",
	Invalid: "Invalid JSON",

	Format:   "Format",
	Minify:   "Minify",
	Unescape: "Unescape",
	Copy:     "Copy",
	Clear:    "Clear",

	Fix:        "Fix with AI",
	Fixing:     "Fixing...",
	Sample:     "AI Sample",
	Generating: "Generating...",

	SwitchLang:  "Language",
	SwitchTheme: "Theme",
	GoToPath:    "Go to path",
	Help:        "Help",
	Quit:        "Quit",

	Editor: "Editor",
	Tree:   "Tree",

	TreeNeedsFix: "Fix parsing errors to view the tree",
	TreeEmpty:    "Enter valid JSON to visualize",
	Placeholder:  "Paste JSON here...",

	Copied:          "Copied to clipboard",
	CopyFailed:      "Copy failed",
	FixFailed:       "AI failed to fix the JSON",
	GenerateFailed:  "Failed to generate sample data",
	AIUnavailable:   "AI service unavailable",
	Busy:            "An AI request is already running",
	NothingToRepair: "Nothing to repair",
	PathNotFound:    "Path not found",
}

var chinese = Labels{
	Valid:   "JSON 有效",
	Invalid: "JSON 无效",

	Format:   "格式化",
	Minify:   "压缩",
	Unescape: "去转义",
	Copy:     "复制",
	Clear:    "清空",

	Fix:        "AI 修复",
	Fixing:     "修复中...",
	Sample:     "AI 示例",
	Generating: "生成中...",

	SwitchLang:  "切换语言",
	SwitchTheme: "切换主题",
	GoToPath:    "跳转路径",
	Help:        "帮助",
	Quit:        "退出",

	Editor: "编辑器",
	Tree:   "树视图",

	TreeNeedsFix: "修复解析错误后查看树视图",
	TreeEmpty:    "输入有效的 JSON 以可视化",
	Placeholder:  "在此粘贴 JSON...",

	Copied:          "已复制到剪贴板",
	CopyFailed:      "复制失败",
	FixFailed:       "AI 未能修复 JSON",
	GenerateFailed:  "生成示例数据失败",
	AIUnavailable:   "AI 服务不可用",
	Busy:            "已有 AI 请求正在运行",
	NothingToRepair: "没有需要修复的内容",
	PathNotFound:    "未找到路径",
}
