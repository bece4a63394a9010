// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package i18n_test

import (
	"reflect"
	"testing"

	"github.com/creachadair/jview/internal/i18n"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   i18n.Lang
	}{
		{"", i18n.English},
		{"C", i18n.English},
		{"POSIX", i18n.English},
		{"en", i18n.English},
		{"en_US.UTF-8", i18n.English},
		{"de_DE.UTF-8", i18n.English},
		{"zh", i18n.Chinese},
		{"zh_CN.UTF-8", i18n.Chinese},
		{"zh-CN", i18n.Chinese},
		{"zh_CN.GB18030@stroke", i18n.Chinese},
	}
	for _, test := range tests {
		if got := i18n.Match(test.locale); got != test.want {
			t.Errorf("Match(%q): got %q, want %q", test.locale, got, test.want)
		}
	}
}

func TestDetect(t *testing.T) {
	env := func(m map[string]string) func(string) (string, bool) {
		return func(name string) (string, bool) { v, ok := m[name]; return v, ok }
	}
	tests := []struct {
		env  map[string]string
		want i18n.Lang
	}{
		{nil, i18n.English},
		{map[string]string{"LANG": "zh_CN.UTF-8"}, i18n.Chinese},
		{map[string]string{"LANG": "zh_CN.UTF-8", "LC_ALL": "en_US.UTF-8"}, i18n.English},
		{map[string]string{"LANG": "en_US.UTF-8", "LC_MESSAGES": "zh_CN.UTF-8"}, i18n.Chinese},
		{map[string]string{"LC_ALL": "", "LANG": "zh_CN.UTF-8"}, i18n.Chinese},
	}
	for _, test := range tests {
		if got := i18n.Detect(env(test.env)); got != test.want {
			t.Errorf("Detect(%v): got %q, want %q", test.env, got, test.want)
		}
	}
}

func TestToggle(t *testing.T) {
	if got := i18n.English.Toggle(); got != i18n.Chinese {
		t.Errorf("Toggle(en): got %q", got)
	}
	if got := i18n.Chinese.Toggle(); got != i18n.English {
		t.Errorf("Toggle(zh): got %q", got)
	}
	if got := i18n.Chinese.Badge(); got != "CN" {
		t.Errorf("Badge(zh): got %q, want CN", got)
	}
}

// Every label must be translated in every language.
func TestLabelsComplete(t *testing.T) {
	for _, lang := range []i18n.Lang{i18n.English, i18n.Chinese} {
		v := reflect.ValueOf(lang.Labels()).Elem()
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Errorf("Language %q: label %s is empty", lang, v.Type().Field(i).Name)
			}
		}
	}
	if i18n.Lang("fr").Labels() != i18n.English.Labels() {
		t.Error("Unknown language should use English labels")
	}
}
